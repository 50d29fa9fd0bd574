package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
)

// PriceSource reads the single configured subscription price.
type PriceSource interface {
	Current(ctx context.Context) (domain.PriceQuote, error)
}

type PriceHandler struct {
	Prices PriceSource
}

// GetPayAmount returns the current subscription price in WORLD.
func (h *PriceHandler) GetPayAmount(c *fiber.Ctx) error {
	quote, err := h.Prices.Current(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Price not found"})
		}
		slog.Error("Failed to fetch subscription price", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subscription price"})
	}

	return c.JSON(quote)
}
