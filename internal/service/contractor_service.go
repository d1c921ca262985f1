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

type IContractorService interface {
	GetWorkerType(ctx context.Context, chatID string) (*dto.WorkerTypeResponse, error)
}

type contractorService struct {
	scope      queryScope
	classifier *payroll.Classifier
	logger     logger.ILogger
}

func NewContractorService(
	uowFactory unitofwork.RepositoryFactory,
	classifier *payroll.Classifier,
	queryTimeout time.Duration,
	logger logger.ILogger,
) IContractorService {
	return &contractorService{
		scope:      queryScope{uowFactory: uowFactory, timeout: queryTimeout},
		classifier: classifier,
		logger:     logger,
	}
}

func (s *contractorService) GetWorkerType(ctx context.Context, chatID string) (*dto.WorkerTypeResponse, error) {
	uow, ctx, cancel, err := s.scope.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	contractor, err := resolveContractor(ctx, uow, s.logger, chatID)
	if err != nil {
		return nil, err
	}

	return &dto.WorkerTypeResponse{
		Success: true,
		User: dto.WorkerTypeUser{
			Id:         contractor.Id,
			Name:       contractor.DisplayName(),
			Email:      contractor.Email,
			Username:   contractor.Username,
			WorkerType: s.classifier.Classify(contractor.Username),
		},
	}, nil
}

// resolveContractor returns the approved contractor for chatID. Duplicate
// registrations resolve to the lowest id.
func resolveContractor(ctx context.Context, uow unitofwork.UnitOfWork, log logger.ILogger, chatID string) (*entity.Contractor, error) {
	chosen, others, err := uow.ContractorRepository().FindFirst(ctx,
		specification.ByTelegramID{TelegramID: chatID},
		specification.ByStatus{Status: entity.ContractorStatusApproved},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: 2},
	)
	if err != nil {
		return nil, fmt.Errorf("find contractor: %w", err)
	}
	if chosen == nil {
		return nil, ErrContractorNotFound
	}

	if len(others) > 0 {
		log.Warn("CONTRACTOR", "Multiple approved contractors share a chat id", map[string]interface{}{
			"chat_id":   chatID,
			"chosen_id": chosen.Id,
			"other_ids": others,
		})
	}
	return chosen, nil
}
