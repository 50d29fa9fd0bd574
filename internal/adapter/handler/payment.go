package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/domain"
	"github.com/LazarusAA/miniapp-monorepo/internal/core/payment"
)

type PaymentHandler struct {
	Issuer *payment.Issuer
}

// InitiatePayment issues a tracked payment session for the authenticated
// caller. On success the nonce is returned as {id} and also bound to the
// browser via the payment-nonce cookie; the cookie is the only other place
// the nonce appears.
func (h *PaymentHandler) InitiatePayment(c *fiber.Ctx) error {
	email, _ := c.Locals("user_email").(string)

	session, err := h.Issuer.Initiate(c.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		default:
			slog.Error("Failed to initiate payment", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initiate payment"})
		}
	}

	// Apply the cookie instruction the issuer described
	spec := session.Cookie
	c.Cookie(&fiber.Cookie{
		Name:     spec.Name,
		Value:    spec.Value,
		Path:     spec.Path,
		MaxAge:   spec.MaxAge,
		Secure:   spec.Secure,
		HTTPOnly: spec.HTTPOnly,
		SameSite: spec.SameSite,
	})

	return c.JSON(fiber.Map{"id": session.Nonce})
}
