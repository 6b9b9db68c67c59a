package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Shown in the page footer so support can find the log line.
	if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
		data["RequestID"] = rid
	}
	return c.Render(tmpl, data)
}
