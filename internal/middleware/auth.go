package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
)

const userIDLocal = "user_id"

// TokenVerifier resolves an acting user id from a raw Authorization header value.
type TokenVerifier interface {
	VerifyHeader(authorization string) (int64, error)
}

// BearerAuth returns a middleware that verifies the bearer token and stores
// the acting user id for downstream handlers. Any verification failure is
// reported as unauthorized with the verifier's message.
func BearerAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := tokens.VerifyHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return apperr.New(apperr.Unauthorized, err.Error())
		}
		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// UserID returns the acting user id stored by BearerAuth, or zero when the
// request did not pass through it.
func UserID(c *fiber.Ctx) int64 {
	uid, _ := c.Locals(userIDLocal).(int64)
	return uid
}
