package services

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"

	"hotel-booking/errors"
	"hotel-booking/model"
)

// TokenIssuer signs HS256 tokens carrying a whitelisted user payload.
type TokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	validate *validator.Validate
	now      func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		ttl:      ttl,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (i *TokenIssuer) Issue(user model.UserPayload) (string, error) {
	if err := i.validate.Struct(user); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}

	now := i.now()
	claims := jwt.MapClaims{
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}
	if user.Name != "" {
		claims["name"] = user.Name
	}
	if user.UID != "" {
		claims["uid"] = user.UID
	}
	if user.PhotoURL != "" {
		claims["photoURL"] = user.PhotoURL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %v", err)
	}
	return signed, nil
}
