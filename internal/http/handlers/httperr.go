package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"solarmart/internal/domain"
	applog "solarmart/internal/log"
)

// fail maps domain errors to the 4xx family and hides everything else
// behind a generic 500.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid quantity"})
	case errors.Is(err, domain.ErrProductUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "product no longer available"})
	case errors.Is(err, domain.ErrPaymentResolved):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "payment already resolved"})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
