package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/domain"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

// ResponseAppError maps a taxonomy error to its stable status code.
// An unrecognized error is treated as a store failure.
func ResponseAppError(ctx *fiber.Ctx, err error, msg string) error {
	if msg == "" {
		msg = err.Error()
	}
	return ResponseError(ctx, StatusForError(err), msg)
}

func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingParameter),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrNoChange):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
