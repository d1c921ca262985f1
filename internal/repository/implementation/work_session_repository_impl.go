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

type WorkSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkSessionMapper
}

func NewWorkSessionRepository(db *gorm.DB) contract.WorkSessionRepository {
	return &WorkSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkSessionMapper(),
	}
}

func (r *WorkSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error) {
	var models []*model.WorkSession
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
