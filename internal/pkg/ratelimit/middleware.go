package ratelimit

import (
	"workforce-bot-api/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// KeyFunc picks the quota bucket for a request.
type KeyFunc func(ctx *fiber.Ctx) string

// KeyByParamOrIP buckets by the first route parameter present (the chat
// id), otherwise by client IP.
func KeyByParamOrIP(params ...string) KeyFunc {
	return func(ctx *fiber.Ctx) string {
		for _, param := range params {
			if v := ctx.Params(param); v != "" {
				return "chat:" + v
			}
		}
		return "ip:" + ctx.IP()
	}
}

func Middleware(l Limiter, key KeyFunc) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if l == nil || l.Allow(ctx.UserContext(), key(ctx)) {
			return ctx.Next()
		}
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse("Too many requests"))
	}
}
