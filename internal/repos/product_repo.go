package repos

import (
	"context"

	"invtracker/internal/domain"

	"github.com/jmoiron/sqlx"
)

const productColumns = `id, name, price, category, available`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// All returns every product ordered by id.
func (r *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT `+productColumns+`
  FROM products
  ORDER BY id
`)
	return out, err
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, `
  SELECT `+productColumns+`
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

// Create inserts p and returns it with the id assigned by sqlite.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO products(name,price,category,available)
		VALUES(?,?,?,?)
	`, p.Name, p.Price, p.Category, p.Available)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = id
	return p, nil
}

// InStock returns available products, most expensive first. Category matching
// stays with the caller: sqlite's LOWER() folds ASCII only.
func (r *ProductRepo) InStock(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT `+productColumns+`
  FROM products
  WHERE available = 1
  ORDER BY price DESC, id
`)
	return out, err
}

// ByPriceRange matches min <= price <= max.
func (r *ProductRepo) ByPriceRange(ctx context.Context, min, max float64) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT `+productColumns+`
  FROM products
  WHERE price BETWEEN ? AND ?
  ORDER BY id
`, min, max)
	return out, err
}

func (r *ProductRepo) ByAvailability(ctx context.Context, available bool) ([]domain.Product, error) {
	flag := 0
	if available {
		flag = 1
	}
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
  SELECT `+productColumns+`
  FROM products
  WHERE available = ?
  ORDER BY id
`, flag)
	return out, err
}
