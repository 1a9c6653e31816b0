package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"meprofiled/backend/internal/models"
)

// NewErrorHandler renders errors that escape the route handlers, such as
// oversized bodies, unknown routes and recovered panics.
func NewErrorHandler(maxFileSize int64, debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		resp := models.ErrorResponse{Error: internalErrorMessage}
		switch code {
		case fiber.StatusRequestEntityTooLarge:
			resp.Error = FileTooLargeMessage(maxFileSize)
		case fiber.StatusNotFound:
			resp.Error = "Endpoint not found"
		case fiber.StatusInternalServerError:
			log.Printf("❌ Unhandled error: %v", err)
			if debug {
				details := err.Error()
				resp.Details = &details
			}
		default:
			resp.Error = err.Error()
		}

		return c.Status(code).JSON(resp)
	}
}
