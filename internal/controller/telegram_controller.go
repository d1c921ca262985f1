package controller

import (
	"errors"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/pkg/serverutils"
	"workforce-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	notFoundWorkerType = "User not found or not approved"
	notFoundDefault    = "User not found"
)

type ITelegramController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	GetWorkerType(ctx *fiber.Ctx) error
	GetHours(ctx *fiber.Ctx) error
	GetPayments(ctx *fiber.Ctx) error
	GetQuotes(ctx *fiber.Ctx) error
	GetMilestones(ctx *fiber.Ctx) error
	GetPaymentStatus(ctx *fiber.Ctx) error
}

type telegramController struct {
	contractorService service.IContractorService
	hoursService      service.IHoursService
	paymentService    service.IPaymentService
	jobService        service.IJobService
}

func NewTelegramController(
	contractorService service.IContractorService,
	hoursService service.IHoursService,
	paymentService service.IPaymentService,
	jobService service.IJobService,
) ITelegramController {
	return &telegramController{
		contractorService: contractorService,
		hoursService:      hoursService,
		paymentService:    paymentService,
		jobService:        jobService,
	}
}

// RegisterRoutes mounts the bot endpoints. middlewares run per route, after
// parameters are resolved.
func (c *telegramController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/telegram")
	h.Get("/worker-type/:chat_id", withMiddlewares(middlewares, c.GetWorkerType)...)
	h.Get("/hours/:chat_id", withMiddlewares(middlewares, c.GetHours)...)
	h.Get("/payments/:chat_id", withMiddlewares(middlewares, c.GetPayments)...)
	h.Get("/subcontractor/quotes/:chat_id", withMiddlewares(middlewares, c.GetQuotes)...)
	h.Get("/subcontractor/milestones/:chat_id", withMiddlewares(middlewares, c.GetMilestones)...)
	h.Get("/subcontractor/payment-status/:chat_id", withMiddlewares(middlewares, c.GetPaymentStatus)...)
}

func (c *telegramController) GetWorkerType(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	res, err := c.contractorService.GetWorkerType(ctx.UserContext(), chatID)
	if errors.Is(err, service.ErrContractorNotFound) {
		return ctx.JSON(dto.LookupFailureResponse{Success: false, Error: notFoundWorkerType, ChatID: chatID})
	}
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *telegramController) GetHours(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	query := dto.HoursQuery{Period: dto.PeriodWeek}
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.NewValidationError([]string{serverutils.LocQuery}, err.Error(), "value_error")
	}
	if query.Period == "" {
		query.Period = dto.PeriodWeek
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.hoursService.GetHoursSummary(ctx.UserContext(), chatID, query.Period)
	if err != nil {
		return lookupResult(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *telegramController) GetPayments(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	res, err := c.paymentService.GetPaymentSummary(ctx.UserContext(), chatID)
	if err != nil {
		return lookupResult(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *telegramController) GetQuotes(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	res, err := c.jobService.GetQuotes(ctx.UserContext(), chatID)
	if err != nil {
		return lookupResult(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *telegramController) GetMilestones(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	res, err := c.jobService.GetMilestones(ctx.UserContext(), chatID)
	if err != nil {
		return lookupResult(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *telegramController) GetPaymentStatus(ctx *fiber.Ctx) error {
	chatID, err := parseChatID(ctx)
	if err != nil {
		return err
	}

	res, err := c.jobService.GetPaymentStatus(ctx.UserContext(), chatID)
	if err != nil {
		return lookupResult(ctx, err)
	}

	return ctx.JSON(res)
}

func parseChatID(ctx *fiber.Ctx) (string, error) {
	var params dto.ChatIDParam
	if err := ctx.ParamsParser(&params); err != nil {
		return "", serverutils.NewValidationError([]string{serverutils.LocPath, "chat_id"}, err.Error(), "value_error")
	}
	if err := serverutils.ValidateRequest(params); err != nil {
		return "", err
	}
	return params.ChatID, nil
}

// lookupResult renders an unknown contractor as a 200 lookup failure and
// hands every other error to the error handler.
func lookupResult(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrContractorNotFound) {
		return ctx.JSON(dto.LookupFailureResponse{Success: false, Error: notFoundDefault})
	}
	return err
}

func withMiddlewares(middlewares []fiber.Handler, h fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(middlewares)+1)
	handlers = append(handlers, middlewares...)
	return append(handlers, h)
}
