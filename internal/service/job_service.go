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
)

type IJobService interface {
	GetQuotes(ctx context.Context, chatID string) (*dto.QuotesResponse, error)
	GetMilestones(ctx context.Context, chatID string) (*dto.MilestonesResponse, error)
	GetPaymentStatus(ctx context.Context, chatID string) (*dto.PaymentStatusResponse, error)
}

type jobService struct {
	scope  queryScope
	logger logger.ILogger
}

func NewJobService(uowFactory unitofwork.RepositoryFactory, queryTimeout time.Duration, logger logger.ILogger) IJobService {
	return &jobService{
		scope:  queryScope{uowFactory: uowFactory, timeout: queryTimeout},
		logger: logger,
	}
}

func (s *jobService) GetQuotes(ctx context.Context, chatID string) (*dto.QuotesResponse, error) {
	name, jobs, err := s.contractorJobs(ctx, chatID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.QuoteItem, 0, len(jobs))
	for _, j := range jobs {
		data = append(data, dto.QuoteItem{
			Id:          j.Id,
			Title:       j.Title,
			Location:    j.Location,
			Description: j.Description,
			Status:      j.Status,
		})
	}

	return &dto.QuotesResponse{Success: true, ContractorName: name, Data: data}, nil
}

func (s *jobService) GetMilestones(ctx context.Context, chatID string) (*dto.MilestonesResponse, error) {
	name, jobs, err := s.contractorJobs(ctx, chatID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MilestoneItem, 0, len(jobs))
	for _, j := range jobs {
		data = append(data, dto.MilestoneItem{
			JobId:    j.Id,
			Title:    j.Title,
			Location: j.Location,
			Status:   j.Status,
			DueDate:  j.DueDate,
			Phases:   j.Phases,
		})
	}

	return &dto.MilestonesResponse{Success: true, ContractorName: name, Data: data}, nil
}

func (s *jobService) GetPaymentStatus(ctx context.Context, chatID string) (*dto.PaymentStatusResponse, error) {
	name, jobs, err := s.contractorJobs(ctx, chatID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PaymentStatusResponse{
		Success:        true,
		ContractorName: name,
		Data:           make([]dto.PaymentStatusItem, 0, len(jobs)),
		Summary:        dto.PaymentStatusSummary{Total: len(jobs)},
	}
	for _, j := range jobs {
		resp.Data = append(resp.Data, dto.PaymentStatusItem{
			Id:      j.Id,
			Title:   j.Title,
			Status:  j.Status,
			DueDate: j.DueDate,
		})
		switch {
		case j.IsCompleted():
			resp.Summary.Completed++
		case j.IsInProgress():
			resp.Summary.InProgress++
		}
	}

	return resp, nil
}

// contractorJobs resolves the contractor and loads their jobs, newest first.
func (s *jobService) contractorJobs(ctx context.Context, chatID string) (string, []*entity.Job, error) {
	uow, ctx, cancel, err := s.scope.begin(ctx)
	if err != nil {
		return "", nil, err
	}
	defer cancel()

	contractor, err := resolveContractor(ctx, uow, s.logger, chatID)
	if err != nil {
		return "", nil, err
	}

	jobs, err := uow.JobRepository().FindAll(ctx,
		specification.OwnedByContractor{ContractorID: contractor.Id, Name: contractor.DisplayName()},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return "", nil, fmt.Errorf("find jobs: %w", err)
	}

	return contractor.DisplayName(), jobs, nil
}
