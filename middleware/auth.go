package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"hotel-booking/errors"
)

const (
	TokenCookie = "token"
	IdentityKey = "identity"

	missingTokenMessage = "Missing or malformed JWT"
)

// Authorize verifies the token cookie and stores the decoded token under
// IdentityKey. There are no roles; a valid signature is enough.
func Authorize(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		TokenLookup:  "cookie:" + TokenCookie,
		ErrorHandler: jwtError,
		ContextKey:   IdentityKey,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == missingTokenMessage {
		return errors.RaiseUnauthenticatedError(c)
	}
	return errors.RaiseUnauthorizedError(c)
}

// Identity returns the claims placed by Authorize, if any.
func Identity(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals(IdentityKey).(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
