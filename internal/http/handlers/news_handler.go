package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solarmart/internal/services"
	"solarmart/internal/validate"
)

type NewsHandler struct {
	Catalog *services.CatalogService
}

func (h *NewsHandler) List(c *fiber.Ctx) error {
	articles, err := h.Catalog.Articles(c.QueryInt("limit", 20))
	if err != nil {
		return fail(c, "news.list", err)
	}
	return c.JSON(fiber.Map{"articles": articles})
}

func (h *NewsHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid article id")
	}
	a, err := h.Catalog.Article(id)
	if err != nil {
		return fail(c, "news.detail", err)
	}
	return c.JSON(a)
}
