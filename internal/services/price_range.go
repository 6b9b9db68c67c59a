package services

import "invtracker/internal/domain"

// PriceRangeResult is either absent (no product matched) or a non-empty list.
// The zero value is absent.
type PriceRangeResult struct {
	products []domain.ProductDTO
	present  bool
}

func Absent() PriceRangeResult { return PriceRangeResult{} }

func Present(products []domain.ProductDTO) PriceRangeResult {
	return PriceRangeResult{products: products, present: true}
}

func (r PriceRangeResult) Get() ([]domain.ProductDTO, bool) { return r.products, r.present }

func (r PriceRangeResult) Present() bool { return r.present }

// Products returns nil when absent.
func (r PriceRangeResult) Products() []domain.ProductDTO { return r.products }
