package project

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/uow"
	"ngo-backoffice/pkg/money"

	"github.com/shopspring/decimal"
)

const minNameLength = 3

type Usecase struct {
	projects domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(projects domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{projects: projects, uow: tx}
}

// Create validates the manager and donors and inserts the project with its
// donor links. budget_spent always starts at zero.
func (u *Usecase) Create(ctx context.Context, in CreateInput, actor access.Principal) (*ProjectDTO, error) {
	if err := access.Check(actor.Role, access.ActionProjectCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return nil, domain.ErrInvalidName
	}
	if in.BudgetTotal.IsNegative() {
		return nil, domain.ErrNegativeTotal
	}
	if err := money.Check(in.BudgetTotal); err != nil {
		return nil, err
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, domain.ErrInvalidPeriod
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPlanned
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	var id uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		switch _, err := r.Projects.GetByName(ctx, name); {
		case err == nil:
			return domain.ErrDuplicateName
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		manager, err := r.Users.GetByID(ctx, in.ManagerID)
		if err != nil {
			return err
		}
		donors, err := r.Donors.GetByIDs(ctx, in.DonorIDs)
		if err != nil {
			return err
		}

		managerID := manager.ID
		p := &domain.Project{
			Name:        name,
			Description: strings.TrimSpace(in.Description),
			Location:    strings.TrimSpace(in.Location),
			StartDate:   in.StartDate,
			EndDate:     in.EndDate,
			BudgetTotal: in.BudgetTotal,
			BudgetSpent: decimal.Zero,
			Currency:    currency,
			Status:      status,
			ManagerID:   &managerID,
			Donors:      donors,
		}
		if err := r.Projects.Create(ctx, p); err != nil {
			return err
		}
		id = p.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, id, actor)
}

// Get returns the project with its manager, donors and budgets.
func (u *Usecase) Get(ctx context.Context, id uint64, actor access.Principal) (*ProjectDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	p, err := u.projects.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// List returns every project to roles allowed to view everything and only
// managed projects to the rest.
func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]ProjectDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	var (
		rows []domain.Project
		err  error
	)
	if actor.Can(access.ActionViewAll) {
		rows, err = u.projects.List(ctx)
	} else {
		rows, err = u.projects.ListByManager(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, id uint64, status domain.Status, actor access.Principal) (*ProjectDTO, error) {
	if err := access.Check(actor.Role, access.ActionProjectUpdateStatus); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Projects.GetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		return r.Projects.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return nil, err
	}
	return u.Get(ctx, id, actor)
}
