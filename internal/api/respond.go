package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/VinaySai005/SkillSwap-dt/internal/store"
)

// storeError maps the store's error kinds onto transport status codes.
// Every kind is a deterministic function of input and state, so nothing
// here is retryable.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	slog.ErrorContext(c.UserContext(), "Unhandled store error", slog.String("error", err.Error()))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
