package expensemock

import (
	"context"
	"errors"

	domain "ngo-backoffice/internal/domain/expense"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

var ErrNotImplemented = errors.New("expensemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset writers succeed; unset readers return ErrNotImplemented.
type Repo struct {
	CreateFn               func(ctx context.Context, e *domain.Expense) error
	SaveFn                 func(ctx context.Context, e *domain.Expense) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Expense, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Expense, error)
	ListFn                 func(ctx context.Context) ([]domain.Expense, error)
	ListByManagerFn        func(ctx context.Context, managerID uint64) ([]domain.Expense, error)
	SumApprovedByBudgetFn  func(ctx context.Context, budgetID uint64) (decimal.Decimal, error)
	SumApprovedByProjectFn func(ctx context.Context, projectID uint64) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Expense) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Expense, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Expense, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Expense, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ListByManager(ctx context.Context, managerID uint64) ([]domain.Expense, error) {
	if m.ListByManagerFn != nil {
		return m.ListByManagerFn(ctx, managerID)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) SumApprovedByBudget(ctx context.Context, budgetID uint64) (decimal.Decimal, error) {
	if m.SumApprovedByBudgetFn != nil {
		return m.SumApprovedByBudgetFn(ctx, budgetID)
	}
	return decimal.Zero, ErrNotImplemented
}

func (m *Repo) SumApprovedByProject(ctx context.Context, projectID uint64) (decimal.Decimal, error) {
	if m.SumApprovedByProjectFn != nil {
		return m.SumApprovedByProjectFn(ctx, projectID)
	}
	return decimal.Zero, ErrNotImplemented
}
