package handlers

import (
	"invtracker/internal/repos"
	"invtracker/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	return NewDepsWithStore(repos.NewProductRepo(db))
}

// NewDepsWithStore wires the handlers over any product store.
func NewDepsWithStore(store services.ProductStore) *Deps {
	invSvc := services.NewInventoryService(store)
	return &Deps{
		ProductHandler:  &ProductHandler{Inv: invSvc},
		CategoryHandler: &CategoryHandler{Inv: invSvc},
	}
}
