package domain_test

import (
	"testing"

	"invtracker/internal/domain"
)

func TestToDTO_LowercasesCategory(t *testing.T) {
	p := domain.Product{ID: 7, Name: "Desk Lamp", Price: 89.99, Category: "Home Appliances", Available: false}
	d := domain.ToDTO(p)

	if d.Category != "home appliances" {
		t.Fatalf("want lower-case category, got %q", d.Category)
	}
	if d.ID != 7 || d.Name != "Desk Lamp" || d.Price != 89.99 || d.Available {
		t.Fatalf("fields not copied verbatim: %+v", d)
	}
	if p.Category != "Home Appliances" {
		t.Fatalf("source product mutated: %+v", p)
	}
}

func TestToDTOs_EmptyIsNotNil(t *testing.T) {
	out := domain.ToDTOs(nil)
	if out == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("want 0 items, got %d", len(out))
	}
}

func TestToDTOs_KeepsOrder(t *testing.T) {
	in := []domain.Product{
		{ID: 2, Name: "B", Category: "X"},
		{ID: 1, Name: "A", Category: "Y"},
	}
	out := domain.ToDTOs(in)
	if len(out) != 2 || out[0].ID != 2 || out[1].ID != 1 {
		t.Fatalf("order not preserved: %+v", out)
	}
}
