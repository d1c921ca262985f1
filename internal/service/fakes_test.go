package service

import (
	"context"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/repository/contract"
	"workforce-bot-api/internal/repository/specification"
	"workforce-bot-api/internal/repository/unitofwork"
	"workforce-bot-api/pkg/events"
)

// fakeContractorRepo serves FindFirst from the rows FindFunc returns.
type fakeContractorRepo struct {
	FindFunc func(ctx context.Context, specs ...specification.Specification) ([]*entity.Contractor, error)
}

func (f *fakeContractorRepo) FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.Contractor, []uint, error) {
	if f.FindFunc == nil {
		return nil, nil, nil
	}
	rows, err := f.FindFunc(ctx, specs...)
	if err != nil || len(rows) == 0 {
		return nil, nil, err
	}
	others := make([]uint, 0, len(rows)-1)
	for _, row := range rows[1:] {
		others = append(others, row.Id)
	}
	return rows[0], others, nil
}

type fakeWorkSessionRepo struct {
	FindAllFunc func(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error)
}

func (f *fakeWorkSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error) {
	if f.FindAllFunc == nil {
		return nil, nil
	}
	return f.FindAllFunc(ctx, specs...)
}

type fakeJobRepo struct {
	FindAllFunc func(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error)
}

func (f *fakeJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error) {
	if f.FindAllFunc == nil {
		return nil, nil
	}
	return f.FindAllFunc(ctx, specs...)
}

type fakeConversationRepo struct {
	CreateFunc  func(ctx context.Context, message *entity.ConversationMessage) error
	FindAllFunc func(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
}

func (f *fakeConversationRepo) Create(ctx context.Context, message *entity.ConversationMessage) error {
	if f.CreateFunc == nil {
		return nil
	}
	return f.CreateFunc(ctx, message)
}

func (f *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error) {
	if f.FindAllFunc == nil {
		return nil, nil
	}
	return f.FindAllFunc(ctx, specs...)
}

type fakeUnitOfWork struct {
	contractors   *fakeContractorRepo
	sessions      *fakeWorkSessionRepo
	jobs          *fakeJobRepo
	conversations *fakeConversationRepo

	begun, committed, rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		contractors:   &fakeContractorRepo{},
		sessions:      &fakeWorkSessionRepo{},
		jobs:          &fakeJobRepo{},
		conversations: &fakeConversationRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begun++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rolledBack++
	return nil
}

func (u *fakeUnitOfWork) ContractorRepository() contract.ContractorRepository {
	return u.contractors
}

func (u *fakeUnitOfWork) WorkSessionRepository() contract.WorkSessionRepository {
	return u.sessions
}

func (u *fakeUnitOfWork) JobRepository() contract.JobRepository {
	return u.jobs
}

func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// withContractors makes the contractor lookup return the given rows.
func (u *fakeUnitOfWork) withContractors(rows ...*entity.Contractor) *fakeUnitOfWork {
	u.contractors.FindFunc = func(ctx context.Context, specs ...specification.Specification) ([]*entity.Contractor, error) {
		return rows, nil
	}
	return u
}

type recordingPublisher struct {
	published []events.Event
	err       error
	// block makes Publish wait for ctx to end, like a stalled broker.
	block       bool
	hadDeadline bool
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	_, p.hadDeadline = ctx.Deadline()
	if p.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return p.err
}

func (p *recordingPublisher) Close() {}

func findSpec[T specification.Specification](specs []specification.Specification) (T, bool) {
	for _, s := range specs {
		if v, ok := s.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
