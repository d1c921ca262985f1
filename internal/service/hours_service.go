package service

import (
	"context"
	"fmt"
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/repository/specification"
	"workforce-bot-api/internal/repository/unitofwork"
	"workforce-bot-api/pkg/payroll"
)

type IHoursService interface {
	GetHoursSummary(ctx context.Context, chatID string, period string) (*dto.HoursResponse, error)
}

type hoursService struct {
	scope    queryScope
	clock    Clock
	location *time.Location
	logger   logger.ILogger
}

func NewHoursService(
	uowFactory unitofwork.RepositoryFactory,
	queryTimeout time.Duration,
	clock Clock,
	location *time.Location,
	logger logger.ILogger,
) IHoursService {
	return &hoursService{
		scope:    queryScope{uowFactory: uowFactory, timeout: queryTimeout},
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

func (s *hoursService) GetHoursSummary(ctx context.Context, chatID string, period string) (*dto.HoursResponse, error) {
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
		periodWindow(period, now),
		specification.OrderBy{Field: "start_time", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("find work sessions: %w", err)
	}

	pay := payroll.CalculatePay(
		sumSessionHours(s.logger, sessions),
		payroll.EffectiveHourlyRate(contractor.AdminPayRate),
		payroll.WithholdingRate(contractor.CISRegistered),
	)

	items := make([]dto.SessionItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, s.toSessionItem(session))
	}

	return &dto.HoursResponse{
		Success:        true,
		Period:         period,
		ContractorName: contractor.DisplayName(),
		Summary: dto.HoursSummary{
			TotalHours:     pay.Hours,
			TotalSessions:  len(sessions),
			TotalGrossPay:  pay.Gross,
			TotalNetPay:    pay.Net,
			TotalDeduction: pay.Deduction,
			CISRate:        pay.WithholdingPct,
			HourlyRate:     pay.HourlyRate,
		},
		Sessions: items,
	}, nil
}

func (s *hoursService) toSessionItem(session *entity.WorkSession) dto.SessionItem {
	start := session.StartTime.In(s.location)

	endTime := "Active"
	if !session.IsActive() {
		endTime = session.EndTime.In(s.location).Format("15:04")
	}

	hours := "0:00"
	if session.TotalHours != nil && *session.TotalHours != "" {
		hours = *session.TotalHours
	}

	return dto.SessionItem{
		Id:        session.Id,
		Date:      start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
		EndTime:   endTime,
		Hours:     hours,
		Location:  session.JobSiteLocation,
	}
}
