package repos

import (
	"context"

	"invtracker/internal/domain"
)

// MemoryStore serves a fixed product list. It is read-only after construction.
type MemoryStore struct {
	products []domain.Product
}

func NewMemoryStore(products ...domain.Product) *MemoryStore {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	return &MemoryStore{products: cp}
}

// All returns a copy so callers cannot reorder the store.
func (s *MemoryStore) All(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
