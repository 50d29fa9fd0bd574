package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/LazarusAA/miniapp-monorepo/internal/core/session"
)

// Protected resolves the caller's session to an email before any handler
// runs. The token travels either in the session cookie or as a Bearer header;
// requests with no valid session are rejected here, before any state is
// touched.
func Protected(sessions *session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(session.CookieName)

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		email, err := sessions.VerifyToken(tokenString)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		// Handlers read the verified identity from here
		c.Locals("user_email", email)

		return c.Next()
	}
}
