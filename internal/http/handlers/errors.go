package handlers

import (
	"errors"
	"strings"

	applog "invtracker/internal/log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler logs the real error and answers with a generic message.
// API callers get JSON, page requests get the notfound template.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = fe.Message
	}
	applog.Error(c, "server.error", err, map[string]any{"status": code})

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

func Healthz(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }
