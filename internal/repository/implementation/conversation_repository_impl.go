package implementation

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/mapper"
	"workforce-bot-api/internal/model"
	"workforce-bot-api/internal/repository/contract"
	"workforce-bot-api/internal/repository/specification"

	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMessageMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMessageMapper(),
	}
}

// Create inserts the message; id and created_at are assigned by the database
// and copied back onto message.
func (r *ConversationRepositoryImpl) Create(ctx context.Context, message *entity.ConversationMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error) {
	var models []*model.ConversationMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
