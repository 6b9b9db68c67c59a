package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "invtracker/internal/log"
)

// Routes mounts the page, API and health endpoints. apiRateMax is the number
// of API calls one IP may make per minute.
func Routes(app *fiber.App, deps *Deps, apiRateMax int) {
	app.Get("/category/:category", deps.CategoryHandler.Page)

	api := app.Group("/api/v1", limiter.New(limiter.Config{
		Max:        apiRateMax,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|api"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "rate.api.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/price", deps.ProductHandler.ByPriceRange)
	api.Get("/products/availability", deps.ProductHandler.ByAvailability)
	api.Get("/products/category/:category", deps.ProductHandler.ByCategory)
	api.Get("/products/category/:category/in-stock", deps.ProductHandler.InStock)

	app.Get("/healthz", Healthz)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})
}
