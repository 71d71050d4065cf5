package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hotel-booking/errors"
	"hotel-booking/middleware"
	"hotel-booking/model"
	"hotel-booking/services"
)

type AuthHandler struct {
	issuer       *services.TokenIssuer
	secure       bool
	cookieMaxAge time.Duration
}

// NewAuthHandler sets the Secure cookie flag only when secure is true, which
// main ties to the production environment.
func NewAuthHandler(issuer *services.TokenIssuer, secure bool, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{issuer: issuer, secure: secure, cookieMaxAge: cookieMaxAge}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var user model.UserPayload
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &user); err != nil {
			return badBody(c)
		}
	}

	token, err := h.issuer.Issue(user)
	if errors.Is(err, errors.ErrInvalidInput) {
		return errors.RaiseBadRequestError(c, "invalid user payload")
	}
	if err != nil {
		return serverError(c, err, "Error generating token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		Secure:   h.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

// Me echoes the verified identity. It is only reachable behind Authorize.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.Identity(c)
	if !ok {
		return errors.RaiseUnauthorizedError(c)
	}
	return c.JSON(claims)
}
