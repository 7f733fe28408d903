package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"solarmart/internal/domain"
	applog "solarmart/internal/log"
	"solarmart/internal/repos"
	"solarmart/internal/services"
	"solarmart/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Orders  *repos.OrderRepo
}

type productRequest struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImagesJSON  string `json:"imagesJson"`
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return badRequest(c, "invalid price")
	}
	p, err := h.Catalog.CreateProduct(req.CategoryID, req.Name, req.Description, req.ImagesJSON, price)
	if err != nil {
		return fail(c, "admin.product.create", err)
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return badRequest(c, "invalid price")
	}
	p, err := h.Catalog.UpdateProduct(domain.Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ImagesJSON:  req.ImagesJSON,
	})
	if err != nil {
		return fail(c, "admin.product.update", err)
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.Catalog.RemoveProduct(id); err != nil {
		return fail(c, "admin.product.delete", err)
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

type testimonialRequest struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
}

func (h *AdminHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req testimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	t, err := h.Catalog.CreateTestimonial(req.Author, req.Quote, req.Rating)
	if err != nil {
		return fail(c, "admin.testimonial.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (h *AdminHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid testimonial id")
	}
	if err := h.Catalog.RemoveTestimonial(id); err != nil {
		return fail(c, "admin.testimonial.delete", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

type articleRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *AdminHandler) CreateArticle(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	a, err := h.Catalog.CreateArticle(req.Title, req.Body)
	if err != nil {
		return fail(c, "admin.news.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *AdminHandler) UpdateArticle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid article id")
	}
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	a, err := h.Catalog.UpdateArticle(domain.Article{ID: id, Title: req.Title, Body: req.Body})
	if err != nil {
		return fail(c, "admin.news.update", err)
	}
	return c.JSON(a)
}

func (h *AdminHandler) DeleteArticle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid article id")
	}
	if err := h.Catalog.RemoveArticle(id); err != nil {
		return fail(c, "admin.news.delete", err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListOrders is the back-office view of recent orders.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(c.QueryInt("limit", 100))
	if err != nil {
		return fail(c, "admin.orders.list", err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}
