package contract

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/repository/specification"
)

type JobRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error)
}
