package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"takeaway/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// genericError is all a client ever learns about an internal failure.
const genericError = "Internal server error"

func listResponse(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func notFound(c *fiber.Ctx, resource string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   resource + " not found",
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body for %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Invalid request body",
	})
}

// bodyError answers a BodyParser failure. A value of the wrong type is a
// validation failure on its field; anything else is a malformed body.
func bodyError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fieldsFailed(c, map[string]string{
			typeErr.Field: typeMessage(typeErr.Field, typeErr),
		})
	}
	return invalidBody(c, err)
}

func validationFailed(c *fiber.Ctx, err error) error {
	return fieldsFailed(c, validationMessages(err))
}

func fieldsFailed(c *fiber.Ctx, messages map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"errors":  messages,
	})
}

// internalError logs err and answers with the generic 500 envelope;
// message says what failed without exposing why.
func internalError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   genericError,
		"message": message,
	})
}

// storeError maps a service error to 404 or 500.
func storeError(c *fiber.Ctx, resource, message string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, resource)
	}
	return internalError(c, message, err)
}

// paramID reads the :id route parameter. Anything that is not a positive
// integer cannot name a record.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ErrorHandler renders errors that escape the handlers, including
// recovered panics, in the same envelope as everything else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"error":   fiberErr.Message,
		})
	}
	return internalError(c, "Unhandled error", err)
}
