package contract

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, message *entity.ConversationMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
}
