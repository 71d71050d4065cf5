package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	req, _ := http.NewRequest("GET", "/", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	generated := res.Header.Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, string(body))

	req, _ = http.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "caller-id", res.Header.Get(RequestIDHeader))
}

func TestRateLimitRejectsBadRate(t *testing.T) {
	store, err := NewLimiterStore(nil)
	require.NoError(t, err)

	_, err = RateLimit("lots", store)
	assert.Error(t, err)

	handler, err := RateLimit("10-S", store)
	require.NoError(t, err)
	assert.NotNil(t, handler)
}

func TestAuthorizeRejects(t *testing.T) {
	app := fiber.New()
	app.Get("/", Authorize("secret"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	expired := signToken(t, "secret", jwt.MapClaims{"email": "a@b.com", "exp": time.Now().Add(-time.Minute).Unix()})
	wrongKey := signToken(t, "other", jwt.MapClaims{"email": "a@b.com", "exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		description     string
		cookie          string
		expectedMessage string
	}{
		{"no cookie", "", "not authorized"},
		{"malformed token", "not.a.jwt", "unauthorized"},
		{"expired token", expired, "unauthorized"},
		{"wrong signing key", wrongKey, "unauthorized"},
	}

	for _, test := range tests {
		req, _ := http.NewRequest("GET", "/", nil)
		if test.cookie != "" {
			req.Header.Set("Cookie", TokenCookie+"="+test.cookie)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equalf(t, 401, res.StatusCode, test.description)
		body, _ := io.ReadAll(res.Body)
		assert.JSONEqf(t, `{"message":"`+test.expectedMessage+`"}`, string(body), test.description)
	}
}

func TestAuthorizeExposesIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/", Authorize("secret"), func(c *fiber.Ctx) error {
		claims, ok := Identity(c)
		if !ok {
			return c.SendStatus(500)
		}
		return c.JSON(claims)
	})

	token := signToken(t, "secret", jwt.MapClaims{
		"email": "a@b.com",
		"name":  "Guest",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("Cookie", TokenCookie+"="+token)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, res.StatusCode)

	var claims map[string]interface{}
	body, _ := io.ReadAll(res.Body)
	require.NoError(t, json.Unmarshal(body, &claims))
	assert.Equal(t, "a@b.com", claims["email"])
	assert.Equal(t, "Guest", claims["name"])
}

func TestIdentityWithoutAuthorize(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := Identity(c)
		assert.False(t, ok)
		return c.SendStatus(200)
	})

	req, _ := http.NewRequest("GET", "/", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
