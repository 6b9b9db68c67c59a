package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"invtracker/internal/domain"
)

var (
	ErrMissingArgument = errors.New("missing required argument")
	ErrNegativeBound   = errors.New("price bound must not be negative")
)

// ProductStore is the only storage capability the service needs.
type ProductStore interface {
	All(ctx context.Context) ([]domain.Product, error)
}

// Optional store capabilities. When a store has them the filter runs there;
// they must return what the in-memory filter would, in storage order.
type (
	PriceRangeQuerier interface {
		ByPriceRange(ctx context.Context, min, max float64) ([]domain.Product, error)
	}
	AvailabilityQuerier interface {
		ByAvailability(ctx context.Context, available bool) ([]domain.Product, error)
	}
	InStockQuerier interface {
		InStock(ctx context.Context) ([]domain.Product, error)
	}
)

type InventoryService struct {
	Store ProductStore
}

func NewInventoryService(store ProductStore) *InventoryService {
	return &InventoryService{Store: store}
}

// AllProducts returns every product in storage order.
func (s *InventoryService) AllProducts(ctx context.Context) ([]domain.ProductDTO, error) {
	products, err := s.Store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return domain.ToDTOs(products), nil
}

// ProductsByCategory matches the whole category name ignoring case and
// returns the most expensive products first. Equal prices keep storage order.
func (s *InventoryService) ProductsByCategory(ctx context.Context, category string) ([]domain.ProductDTO, error) {
	products, err := s.Store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	out := domain.ToDTOs(filter(products, func(p domain.Product) bool {
		return strings.EqualFold(p.Category, category)
	}))
	sortByPriceDesc(out)
	return out, nil
}

// ProductsByPriceRange keeps products with min <= price <= max. Both bounds
// are required. No match yields an absent result rather than an empty list.
func (s *InventoryService) ProductsByPriceRange(ctx context.Context, min, max *float64) (PriceRangeResult, error) {
	if min == nil {
		return PriceRangeResult{}, fmt.Errorf("minPrice: %w", ErrMissingArgument)
	}
	if max == nil {
		return PriceRangeResult{}, fmt.Errorf("maxPrice: %w", ErrMissingArgument)
	}
	if *min < 0 || *max < 0 {
		return PriceRangeResult{}, fmt.Errorf("range %v..%v: %w", *min, *max, ErrNegativeBound)
	}
	lo, hi := *min, *max

	var (
		products []domain.Product
		err      error
	)
	if q, ok := s.Store.(PriceRangeQuerier); ok {
		products, err = q.ByPriceRange(ctx, lo, hi)
	} else {
		products, err = s.Store.All(ctx)
		products = filter(products, func(p domain.Product) bool {
			return p.Price >= lo && p.Price <= hi
		})
	}
	if err != nil {
		return PriceRangeResult{}, fmt.Errorf("list products by price range: %w", err)
	}
	if len(products) == 0 {
		return Absent(), nil
	}
	return Present(domain.ToDTOs(products)), nil
}

func (s *InventoryService) ProductsByAvailability(ctx context.Context, available bool) ([]domain.ProductDTO, error) {
	var (
		products []domain.Product
		err      error
	)
	if q, ok := s.Store.(AvailabilityQuerier); ok {
		products, err = q.ByAvailability(ctx, available)
	} else {
		products, err = s.Store.All(ctx)
		products = filter(products, func(p domain.Product) bool {
			return p.Available == available
		})
	}
	if err != nil {
		return nil, fmt.Errorf("list products by availability: %w", err)
	}
	return domain.ToDTOs(products), nil
}

// InStockByCategory is ProductsByCategory restricted to available products.
func (s *InventoryService) InStockByCategory(ctx context.Context, category string) ([]domain.ProductDTO, error) {
	if q, ok := s.Store.(InStockQuerier); ok {
		products, err := q.InStock(ctx)
		if err != nil {
			return nil, fmt.Errorf("list in-stock products: %w", err)
		}
		// already price desc, id; filtering keeps that order
		return domain.ToDTOs(filter(products, func(p domain.Product) bool {
			return strings.EqualFold(p.Category, category)
		})), nil
	}

	all, err := s.ProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductDTO, 0, len(all))
	for _, p := range all {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func filter(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortByPriceDesc(products []domain.ProductDTO) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price > products[j].Price
	})
}
