package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solarmart/internal/services"
	"solarmart/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 24)
	offset := c.QueryInt("offset", 0)

	if q := c.Query("q"); q != "" {
		products, err := h.Catalog.SearchProducts(q, limit, offset)
		if err != nil {
			return fail(c, "products.search", err)
		}
		return c.JSON(fiber.Map{"products": products})
	}

	products, err := h.Catalog.Products(limit, offset)
	if err != nil {
		return fail(c, "products.list", err)
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.Catalog.Product(id)
	if err != nil {
		return fail(c, "products.detail", err)
	}
	return c.JSON(p)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories()
	if err != nil {
		return fail(c, "categories.list", err)
	}
	return c.JSON(fiber.Map{"categories": cats})
}

func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid category id")
	}
	products, err := h.Catalog.ProductsByCategory(id, c.QueryInt("limit", 24), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, "categories.products", err)
	}
	return c.JSON(fiber.Map{"products": products})
}
