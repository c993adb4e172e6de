package projectmock

import (
	"context"
	"errors"

	domain "ngo-backoffice/internal/domain/project"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

var ErrNotImplemented = errors.New("projectmock: method not implemented")

type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Project) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Project, error)
	GetDetailedFn      func(ctx context.Context, id uint64) (*domain.Project, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Project, error)
	GetByNameFn        func(ctx context.Context, name string) (*domain.Project, error)
	ListFn             func(ctx context.Context) ([]domain.Project, error)
	ListByManagerFn    func(ctx context.Context, managerID uint64) ([]domain.Project, error)
	UpdateStatusFn     func(ctx context.Context, id uint64, status domain.Status) error
	SetSpentFn         func(ctx context.Context, id uint64, spent decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetDetailed(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetDetailedFn != nil {
		return m.GetDetailedFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Project, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ListByManager(ctx context.Context, managerID uint64) ([]domain.Project, error) {
	if m.ListByManagerFn != nil {
		return m.ListByManagerFn(ctx, managerID)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, status domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *Repo) SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error {
	if m.SetSpentFn != nil {
		return m.SetSpentFn(ctx, id, spent)
	}
	return nil
}
