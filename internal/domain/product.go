package domain

import "strings"

// Product is the stored inventory record.
type Product struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Category  string  `db:"category"`
	Available bool    `db:"available"`
}

// ProductDTO is the shape handed to callers. Category is always lower-case.
type ProductDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

func ToDTO(p Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  strings.ToLower(p.Category),
		Available: p.Available,
	}
}

// ToDTOs converts in order. Never returns nil.
func ToDTOs(products []Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToDTO(p))
	}
	return out
}
