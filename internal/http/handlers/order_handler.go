package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "solarmart/internal/log"
	"solarmart/internal/services"
	"solarmart/internal/validate"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	Auth  *services.AuthService
}

type placeOrderRequest struct {
	UserID          string `json:"userId"`
	DeliveryAddress string `json:"deliveryAddress"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	uid, ok := validate.ID(req.UserID)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	addr, ok := validate.Address(req.DeliveryAddress)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "deliveryAddress"})
		return badRequest(c, "invalid delivery address")
	}

	o, err := h.Order.Place(uid, addr)
	if err != nil {
		return fail(c, "order.place", err)
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"user_id":  uid,
		"total":    o.Total.String(),
		"items":    len(o.Items),
	})
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	o, err := h.Order.Get(oid)
	if err != nil {
		return fail(c, "order.view", err)
	}
	return c.JSON(o)
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	uid, ok := validate.ID(c.Query("userId"))
	if !ok {
		return badRequest(c, "missing userId")
	}
	orders, err := h.Order.ListByUser(uid)
	if err != nil {
		return fail(c, "order.history", err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

type paymentResultRequest struct {
	PaymentOutcome string `json:"paymentOutcome"`
}

// RecordPayment receives the external payment signal (webhook or the
// simulated confirmation step) and resolves the order.
func (h *OrderHandler) RecordPayment(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req paymentResultRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}

	var success bool
	switch strings.ToLower(strings.TrimSpace(req.PaymentOutcome)) {
	case "success":
		success = true
	case "failed":
		success = false
	default:
		return badRequest(c, "paymentOutcome must be success or failed")
	}

	o, err := h.Order.RecordPaymentResult(oid, success)
	if err != nil {
		return fail(c, "order.payment", err)
	}
	applog.Audit(c, "order.payment", map[string]any{
		"order_id": oid,
		"outcome":  req.PaymentOutcome,
		"status":   o.Status,
	})
	return c.JSON(o)
}

func (h *OrderHandler) RetryPayment(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	o, err := h.Order.RetryPayment(oid)
	if err != nil {
		return fail(c, "order.retry", err)
	}
	applog.Audit(c, "order.retry", map[string]any{"order_id": oid})
	return c.JSON(o)
}

type reorderRequest struct {
	UserID string `json:"userId"`
}

func (h *OrderHandler) Reorder(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid order id")
	}
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed body")
	}
	uid, ok := validate.ID(req.UserID)
	if !ok {
		return badRequest(c, "invalid user id")
	}
	if err := h.Order.Reorder(oid, uid); err != nil {
		return fail(c, "order.reorder", err)
	}
	cv, err := h.Cart.View(uid)
	if err != nil {
		return fail(c, "order.reorder", err)
	}
	return c.JSON(cv)
}
