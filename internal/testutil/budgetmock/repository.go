package budgetmock

import (
	"context"
	"errors"

	domain "ngo-backoffice/internal/domain/budget"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

var ErrNotImplemented = errors.New("budgetmock: method not implemented")

type Repo struct {
	CreateFn           func(ctx context.Context, b *domain.Budget) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Budget, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Budget, error)
	ListByProjectFn    func(ctx context.Context, projectID uint64) ([]domain.Budget, error)
	ListFn             func(ctx context.Context) ([]domain.Budget, error)
	ListByManagerFn    func(ctx context.Context, managerID uint64) ([]domain.Budget, error)
	SetSpentFn         func(ctx context.Context, id uint64, spent decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Budget) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Budget, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Budget, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ListByProject(ctx context.Context, projectID uint64) ([]domain.Budget, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Budget, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ListByManager(ctx context.Context, managerID uint64) ([]domain.Budget, error) {
	if m.ListByManagerFn != nil {
		return m.ListByManagerFn(ctx, managerID)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error {
	if m.SetSpentFn != nil {
		return m.SetSpentFn(ctx, id, spent)
	}
	return nil
}
