package server

import (
	"errors"

	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/pkg/serverutils"
	"workforce-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps errors escaping the handlers onto the API's error
// bodies. exposeDetails controls whether raw store messages reach clients.
func NewErrorHandler(log logger.ILogger, exposeDetails bool) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErr *serverutils.ValidationError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(validationErr.Items))

		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(serverutils.ErrorResponse(fiberErr.Message))

		case errors.Is(err, service.ErrStoreUnavailable):
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse("Database connection not available"))

		case serverutils.IsTimeout(err):
			log.Warn("HTTP", "Database timeout", map[string]interface{}{
				"path":       ctx.Path(),
				"request_id": serverutils.RequestIDFromCtx(ctx),
				"error":      err.Error(),
			})
			ctx.Set(fiber.HeaderRetryAfter, "1")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponse("Database timeout, please retry"))

		case errors.Is(err, service.ErrInvalidCISFlag):
			log.Error("HTTP", "Invalid contractor record", map[string]interface{}{
				"path":       ctx.Path(),
				"request_id": serverutils.RequestIDFromCtx(ctx),
				"error":      err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(detail("Invalid contractor record", err, exposeDetails)))
		}

		log.Error("HTTP", "Database error", map[string]interface{}{
			"path":       ctx.Path(),
			"request_id": serverutils.RequestIDFromCtx(ctx),
			"error":      err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(detail("Database error", err, exposeDetails)))
	}
}

func detail(prefix string, err error, expose bool) string {
	if !expose {
		return prefix
	}
	return prefix + ": " + err.Error()
}
