package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"invtracker/internal/log"
	"invtracker/internal/services"
	"invtracker/internal/validate"
)

type ProductHandler struct {
	Inv *services.InventoryService
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Inv.AllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GET /api/v1/products/category/:category
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	category, ok := categoryParam(c)
	if !ok {
		return badRequest(c, "category", "invalid category")
	}
	products, err := h.Inv.ProductsByCategory(c.UserContext(), category)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GET /api/v1/products/category/:category/in-stock
func (h *ProductHandler) InStock(c *fiber.Ctx) error {
	category, ok := categoryParam(c)
	if !ok {
		return badRequest(c, "category", "invalid category")
	}
	products, err := h.Inv.InStockByCategory(c.UserContext(), category)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// GET /api/v1/products/price?min=&max=
func (h *ProductHandler) ByPriceRange(c *fiber.Ctx) error {
	min, ok := priceQuery(c, "min")
	if !ok {
		return badRequest(c, "min", "min must be a non-negative number")
	}
	max, ok := priceQuery(c, "max")
	if !ok {
		return badRequest(c, "max", "max must be a non-negative number")
	}

	res, err := h.Inv.ProductsByPriceRange(c.UserContext(), min, max)
	switch {
	case errors.Is(err, services.ErrMissingArgument):
		return badRequest(c, "price", "both min and max are required")
	case errors.Is(err, services.ErrNegativeBound):
		return badRequest(c, "price", "price bounds must not be negative")
	case err != nil:
		return err
	}

	products, present := res.Get()
	if !present {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no products in price range"})
	}
	return c.JSON(products)
}

// GET /api/v1/products/availability?available=
func (h *ProductHandler) ByAvailability(c *fiber.Ctx) error {
	available, ok := validate.Bool(c.Query("available"))
	if !ok {
		return badRequest(c, "available", "available must be true or false")
	}
	products, err := h.Inv.ProductsByAvailability(c.UserContext(), available)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func categoryParam(c *fiber.Ctx) (string, bool) {
	raw, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return "", false
	}
	return validate.Category(raw)
}

// priceQuery returns nil when the parameter is absent so the service can
// report the missing bound.
func priceQuery(c *fiber.Ctx, key string) (*float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, ok := validate.Price(raw)
	if !ok {
		return nil, false
	}
	return &v, true
}

func badRequest(c *fiber.Ctx, field, msg string) error {
	log.Warn(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
