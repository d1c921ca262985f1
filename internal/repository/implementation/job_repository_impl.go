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

type JobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JobMapper
}

func NewJobRepository(db *gorm.DB) contract.JobRepository {
	return &JobRepositoryImpl{
		db:     db,
		mapper: mapper.NewJobMapper(),
	}
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error) {
	var models []*model.Job
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
