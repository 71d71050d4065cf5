package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound        = stderrors.New("not found")
	ErrUnauthenticated = stderrors.New("not authorized")
	ErrUnauthorized    = stderrors.New("unauthorized")
	ErrStorage         = stderrors.New("storage failure")
	ErrInvalidInput    = stderrors.New("invalid input")
)

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"message": message})
}

func RaiseUnauthenticatedError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusUnauthorized, ErrUnauthenticated.Error())
}

func RaiseUnauthorizedError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusUnauthorized, ErrUnauthorized.Error())
}

func RaiseInternalServerError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusInternalServerError, message)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}

func RaiseTooManyRequestsError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusTooManyRequests, "too many requests")
}

// Status maps an error kind to its HTTP status. Unknown errors are treated as
// server errors.
func Status(err error) int {
	switch {
	case stderrors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, ErrUnauthenticated), stderrors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case stderrors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// Respond writes err using message as the body. Server errors always use
// message so storage details never reach the caller.
func Respond(context *fiber.Ctx, err error, message string) error {
	return RaiseError(context, Status(err), message)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
