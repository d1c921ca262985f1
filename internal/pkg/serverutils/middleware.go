package serverutils

import (
	"strings"
	"time"

	"workforce-bot-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"
)

// ErrorHandlerMiddleware renders errors returned further down the chain with h,
// so later middleware (request logging) observes the final status.
func ErrorHandlerMiddleware(h fiber.ErrorHandler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return h(ctx, err)
		}
		return nil
	}
}

// RequestID propagates an incoming X-Request-Id or generates one.
func RequestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := strings.TrimSpace(ctx.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDHeader, id)
		ctx.Locals(RequestIDKey, id)
		return ctx.Next()
	}
}

func RequestIDFromCtx(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(RequestIDKey).(string)
	return id
}

// RequestLogger emits one http_request line per request.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		log.Info("HTTP", "http_request", map[string]interface{}{
			"method":      ctx.Method(),
			"path":        ctx.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  RequestIDFromCtx(ctx),
		})
		return err
	}
}
