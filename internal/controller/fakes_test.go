package controller_test

import (
	"context"

	"workforce-bot-api/internal/dto"
)

type fakeContractorService struct {
	GetWorkerTypeFunc func(ctx context.Context, chatID string) (*dto.WorkerTypeResponse, error)
}

func (f *fakeContractorService) GetWorkerType(ctx context.Context, chatID string) (*dto.WorkerTypeResponse, error) {
	return f.GetWorkerTypeFunc(ctx, chatID)
}

type fakeHoursService struct {
	GetHoursSummaryFunc func(ctx context.Context, chatID string, period string) (*dto.HoursResponse, error)
}

func (f *fakeHoursService) GetHoursSummary(ctx context.Context, chatID string, period string) (*dto.HoursResponse, error) {
	return f.GetHoursSummaryFunc(ctx, chatID, period)
}

type fakePaymentService struct {
	GetPaymentSummaryFunc func(ctx context.Context, chatID string) (*dto.PaymentResponse, error)
}

func (f *fakePaymentService) GetPaymentSummary(ctx context.Context, chatID string) (*dto.PaymentResponse, error) {
	return f.GetPaymentSummaryFunc(ctx, chatID)
}

type fakeJobService struct {
	GetQuotesFunc        func(ctx context.Context, chatID string) (*dto.QuotesResponse, error)
	GetMilestonesFunc    func(ctx context.Context, chatID string) (*dto.MilestonesResponse, error)
	GetPaymentStatusFunc func(ctx context.Context, chatID string) (*dto.PaymentStatusResponse, error)
}

func (f *fakeJobService) GetQuotes(ctx context.Context, chatID string) (*dto.QuotesResponse, error) {
	return f.GetQuotesFunc(ctx, chatID)
}

func (f *fakeJobService) GetMilestones(ctx context.Context, chatID string) (*dto.MilestonesResponse, error) {
	return f.GetMilestonesFunc(ctx, chatID)
}

func (f *fakeJobService) GetPaymentStatus(ctx context.Context, chatID string) (*dto.PaymentStatusResponse, error) {
	return f.GetPaymentStatusFunc(ctx, chatID)
}

type fakeConversationService struct {
	GetHistoryFunc func(ctx context.Context, telegramID int64, limit int) (*dto.ConversationHistoryResponse, error)
	AppendFunc     func(ctx context.Context, req *dto.SaveConversationMessageRequest) (*dto.SaveConversationMessageResponse, error)
}

func (f *fakeConversationService) GetHistory(ctx context.Context, telegramID int64, limit int) (*dto.ConversationHistoryResponse, error) {
	return f.GetHistoryFunc(ctx, telegramID, limit)
}

func (f *fakeConversationService) Append(ctx context.Context, req *dto.SaveConversationMessageRequest) (*dto.SaveConversationMessageResponse, error) {
	return f.AppendFunc(ctx, req)
}

type fakeSystemService struct {
	liveness  dto.RootResponse
	readiness dto.HealthResponse
}

func (f *fakeSystemService) Liveness() dto.RootResponse { return f.liveness }

func (f *fakeSystemService) Readiness(ctx context.Context) dto.HealthResponse { return f.readiness }
