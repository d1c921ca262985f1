package unitofwork

import (
	"context"

	"workforce-bot-api/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContractorRepository() contract.ContractorRepository
	WorkSessionRepository() contract.WorkSessionRepository
	JobRepository() contract.JobRepository
	ConversationRepository() contract.ConversationRepository
}
