package controller

import (
	"strconv"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/pkg/serverutils"
	"workforce-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryLimit = 10

type IConversationController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	GetHistory(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
}

func NewConversationController(service service.IConversationService) IConversationController {
	return &conversationController{service: service}
}

func (c *conversationController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/telegram/conversation-history")
	h.Get("/:telegram_id", withMiddlewares(middlewares, c.GetHistory)...)
	h.Post("", withMiddlewares(middlewares, c.Save)...)
}

func (c *conversationController) GetHistory(ctx *fiber.Ctx) error {
	telegramID, err := strconv.ParseInt(ctx.Params("telegram_id"), 10, 64)
	if err != nil {
		return serverutils.NewValidationError(
			[]string{serverutils.LocPath, "telegram_id"},
			"Input should be a valid integer, unable to parse string as an integer",
			"int_parsing",
		)
	}

	query := dto.ConversationHistoryQuery{Limit: defaultHistoryLimit}
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewValidationError(
			[]string{serverutils.LocQuery, "limit"},
			"Input should be a valid integer, unable to parse string as an integer",
			"int_parsing",
		)
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.GetHistory(ctx.UserContext(), telegramID, query.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *conversationController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveConversationMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError([]string{serverutils.LocBody}, "JSON decode error", "json_invalid")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Append(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
