package donormock

import (
	"context"
	"errors"

	domain "ngo-backoffice/internal/domain/donor"
)

var _ domain.Repository = (*Repo)(nil)

var ErrNotImplemented = errors.New("donormock: method not implemented")

type Repo struct {
	CreateFn       func(ctx context.Context, d *domain.Donor) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Donor, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Donor, error)
	GetByIDsFn     func(ctx context.Context, ids []uint64) ([]domain.Donor, error)
	ListFn         func(ctx context.Context) ([]domain.Donor, error)
	ProjectIDsFn   func(ctx context.Context, donorID uint64) ([]uint64, error)
	LinkProjectsFn func(ctx context.Context, donorID uint64, projectIDs []uint64) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Donor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Donor, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) GetByIDs(ctx context.Context, ids []uint64) ([]domain.Donor, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Donor, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) ProjectIDs(ctx context.Context, donorID uint64) ([]uint64, error) {
	if m.ProjectIDsFn != nil {
		return m.ProjectIDsFn(ctx, donorID)
	}
	return nil, ErrNotImplemented
}

func (m *Repo) LinkProjects(ctx context.Context, donorID uint64, projectIDs []uint64) error {
	if m.LinkProjectsFn != nil {
		return m.LinkProjectsFn(ctx, donorID, projectIDs)
	}
	return nil
}
