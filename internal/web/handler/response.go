package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoRandomString/GoRandomString/internal/metrics"
)

const (
	// KindInvalidRequest is reported when a request fails validation before generation.
	KindInvalidRequest = metrics.KindInvalidRequest

	// LocalsErrorKind is the fiber local SendError stores the error kind in, for the access log.
	LocalsErrorKind = "errorKind"
)

type (
	// FieldError describes one failed validation rule.
	FieldError struct {
		Field string `json:"field"`
		Tag   string `json:"tag"`
	}

	// ErrorResponse is the body of every failed api call.
	ErrorResponse struct {
		Success bool         `json:"success"`
		Kind    string       `json:"kind"`
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields,omitempty"`
	}
)

// SendError writes an ErrorResponse with status.
func SendError(c *fiber.Ctx, status int, kind, message string, fields ...FieldError) error {
	c.Locals(LocalsErrorKind, kind)

	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Kind:    kind,
		Message: message,
		Fields:  fields,
	})
}
