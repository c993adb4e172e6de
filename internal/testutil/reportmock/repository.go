package reportmock

import (
	"context"
	"errors"

	domain "ngo-backoffice/internal/domain/report"
)

var _ domain.Repository = (*Repo)(nil)

var ErrNotImplemented = errors.New("reportmock: method not implemented")

type Repo struct {
	CreateFn        func(ctx context.Context, r *domain.ImpactReport) error
	SaveFn          func(ctx context.Context, r *domain.ImpactReport) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.ImpactReport, error)
	ListFn          func(ctx context.Context) ([]domain.ImpactReport, error)
	ListByManagerFn func(ctx context.Context, managerID uint64) ([]domain.ImpactReport, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.ImpactReport) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.ImpactReport) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.ImpactReport, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.ImpactReport, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ListByManager(ctx context.Context, managerID uint64) ([]domain.ImpactReport, error) {
	if m.ListByManagerFn != nil {
		return m.ListByManagerFn(ctx, managerID)
	}
	return nil, ErrNotImplemented
}
