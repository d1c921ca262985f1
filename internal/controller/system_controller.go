package controller

import (
	"workforce-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

const twimlTestResponse = `<Response>
  <Say>Twilio test path is working.</Say>
  <Hangup/>
</Response>`

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	TwimlTest(ctx *fiber.Ctx) error
}

type systemController struct {
	service service.ISystemService
}

func NewSystemController(service service.ISystemService) ISystemController {
	return &systemController{service: service}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
	r.Post("/twiml/test", c.TwimlTest)
}

func (c *systemController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Liveness())
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Readiness(ctx.UserContext()))
}

// TwimlTest is kept for the Twilio webhook smoke test.
func (c *systemController) TwimlTest(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	return ctx.SendString(twimlTestResponse)
}
