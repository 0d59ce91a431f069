package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jvrm/bilhetinho-api/services"
	"github.com/jvrm/bilhetinho-api/validator"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func unprocessable(c *fiber.Ctx, message string, details interface{}) error {
	body := fiber.Map{"error": message}
	if details != nil {
		body["details"] = details
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
}

func tooManyRequests(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// validationFailed maps validator output to a 422 response.
func validationFailed(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return unprocessable(c, "Validation failed", verrs)
	}
	return unprocessable(c, err.Error(), nil)
}

// serviceError maps service sentinel errors to HTTP responses. Anything
// outside the taxonomy is an unexpected store error.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrNoteAlreadyProcessed),
		errors.Is(err, services.ErrRoomClosed):
		return conflict(c, err.Error())
	case errors.Is(err, services.ErrSameTable),
		errors.Is(err, services.ErrTablesNotInSameRoom):
		return unprocessable(c, err.Error(), nil)
	case errors.Is(err, services.ErrNoteQuotaReached):
		return tooManyRequests(c, err.Error())
	default:
		return serverErrorWithDetails(c, "Internal server error", err)
	}
}
