package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solarmart/internal/services"
)

type TestimonialHandler struct {
	Catalog *services.CatalogService
}

func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	ts, err := h.Catalog.Testimonials(c.QueryInt("limit", 20))
	if err != nil {
		return fail(c, "testimonials.list", err)
	}
	return c.JSON(fiber.Map{"testimonials": ts})
}
