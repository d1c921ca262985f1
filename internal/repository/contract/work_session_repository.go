package contract

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/repository/specification"
)

type WorkSessionRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error)
}
