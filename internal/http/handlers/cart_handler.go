package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "solarmart/internal/log"
	"solarmart/internal/services"
	"solarmart/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) userID(c *fiber.Ctx) (string, bool) {
	return validate.ID(c.Params("userId"))
}

// cartReply returns the mutated cart so every mutation responds with the
// same shape the GET does.
func (h *CartHandler) cartReply(c *fiber.Ctx, userID string) error {
	cv, err := h.Cart.View(userID)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	uid, ok := h.userID(c)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	return h.cartReply(c, uid)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	uid, ok := h.userID(c)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	pid, ok := validate.ID(req.ProductID)
	if !ok {
		return badRequest(c, "missing productId")
	}
	if err := h.Cart.AddItem(uid, pid); err != nil {
		return fail(c, "cart.add", err)
	}
	applog.Info(c, "cart.add", map[string]any{"user_id": uid, "product_id": pid})
	return h.cartReply(c, uid)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	uid, ok := h.userID(c)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	pid, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	if err := h.Cart.SetQuantity(uid, pid, req.Quantity); err != nil {
		return fail(c, "cart.set_qty", err)
	}
	return h.cartReply(c, uid)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	uid, ok := h.userID(c)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	pid, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "invalid product id")
	}
	empty, err := h.Cart.RemoveItem(uid, pid)
	if err != nil {
		return fail(c, "cart.remove", err)
	}
	if empty {
		applog.Info(c, "cart.emptied", map[string]any{"user_id": uid})
	}
	return h.cartReply(c, uid)
}
