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

type ContractorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContractorMapper
}

func NewContractorRepository(db *gorm.DB) contract.ContractorRepository {
	return &ContractorRepositoryImpl{
		db:     db,
		mapper: mapper.NewContractorMapper(),
	}
}

// FindFirst fails with ErrInvalidCISFlag only when the first row carries an
// unreadable is_cis_registered value.
func (r *ContractorRepositoryImpl) FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.Contractor, []uint, error) {
	var models []*model.Contractor
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, nil, err
	}
	return r.mapper.ToFirstEntity(models)
}
