package contract

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/repository/specification"
)

type ContractorRepository interface {
	// FindFirst returns the first matching contractor and the ids of any
	// further matches. It returns (nil, nil, nil) when nothing matches.
	FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.Contractor, []uint, error)
}
