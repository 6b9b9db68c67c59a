package handlers

import (
	"invtracker/internal/log"
	"invtracker/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Inv *services.InventoryService
}

// GET /category/:category renders the category page, most expensive first.
func (h *CategoryHandler) Page(c *fiber.Ctx) error {
	category, ok := categoryParam(c)
	if !ok {
		log.Warn(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Unknown category"})
	}
	products, err := h.Inv.ProductsByCategory(c.UserContext(), category)
	if err != nil {
		log.Error(c, "category.page.fail", err, map[string]any{"category": category})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load products. Please retry."})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Unknown category"})
	}
	return render(c, "category", fiber.Map{"Category": category, "Products": products, "Count": len(products)})
}
