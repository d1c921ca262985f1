package service

import (
	"context"
	"fmt"
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/repository/specification"
	"workforce-bot-api/internal/repository/unitofwork"
	"workforce-bot-api/pkg/payroll"
)

type IPaymentService interface {
	GetPaymentSummary(ctx context.Context, chatID string) (*dto.PaymentResponse, error)
}

type paymentService struct {
	scope    queryScope
	clock    Clock
	location *time.Location
	logger   logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	queryTimeout time.Duration,
	clock Clock,
	location *time.Location,
	logger logger.ILogger,
) IPaymentService {
	return &paymentService{
		scope:    queryScope{uowFactory: uowFactory, timeout: queryTimeout},
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

// GetPaymentSummary reports the trailing week's earnings and CIS deduction.
func (s *paymentService) GetPaymentSummary(ctx context.Context, chatID string) (*dto.PaymentResponse, error) {
	uow, ctx, cancel, err := s.scope.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	contractor, err := resolveContractor(ctx, uow, s.logger, chatID)
	if err != nil {
		return nil, err
	}

	now := s.clock().In(s.location)
	sessions, err := uow.WorkSessionRepository().FindAll(ctx,
		specification.OwnedByContractor{ContractorID: contractor.Id, Name: contractor.DisplayName()},
		periodWindow(dto.PeriodWeek, now),
	)
	if err != nil {
		return nil, fmt.Errorf("find work sessions: %w", err)
	}

	pay := payroll.CalculatePay(
		sumSessionHours(s.logger, sessions),
		payroll.EffectiveHourlyRate(contractor.AdminPayRate),
		payroll.WithholdingRate(contractor.CISRegistered),
	)

	return &dto.PaymentResponse{
		Success:        true,
		ContractorName: contractor.DisplayName(),
		PaymentInfo: dto.PaymentInfo{
			HourlyRate:    storedRate(contractor.AdminPayRate),
			CISRegistered: contractor.CISRegistered,
			CISRate:       pay.WithholdingPct,
			ThisWeekHours: pay.Hours,
			ThisWeekGross: pay.Gross,
			ThisWeekNet:   pay.Net,
			CISDeduction:  pay.Deduction,
		},
	}, nil
}

// storedRate is the rate as recorded on the contractor, 0 when unset. Pay is
// still computed with the effective rate.
func storedRate(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}
