package service

import (
	"context"
	"time"

	"workforce-bot-api/internal/repository/unitofwork"
)

// queryScope bounds every store round-trip of a request by one deadline.
type queryScope struct {
	uowFactory unitofwork.RepositoryFactory
	timeout    time.Duration
}

func (q queryScope) begin(ctx context.Context) (unitofwork.UnitOfWork, context.Context, context.CancelFunc, error) {
	if q.uowFactory == nil {
		return nil, ctx, func() {}, ErrStoreUnavailable
	}

	var cancel context.CancelFunc
	if q.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	return q.uowFactory.NewUnitOfWork(ctx), ctx, cancel, nil
}
