package budget

import (
	"context"
	"strings"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/pkg/money"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	budgets  domain.Repository
	projects project.Repository
}

func NewUsecase(budgets domain.Repository, projects project.Repository) *Usecase {
	return &Usecase{budgets: budgets, projects: projects}
}

// Create allocates a new budget line on an existing project. The spent
// amount starts at zero and is only changed by reconciliation.
func (u *Usecase) Create(ctx context.Context, projectID uint64, in CreateInput, actor access.Principal) (*BudgetDTO, error) {
	if err := access.Check(actor.Role, access.ActionBudgetCreate); err != nil {
		return nil, err
	}
	cat := in.Category
	if cat == "" {
		cat = domain.CategoryOther
	}
	if !cat.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	if in.AllocatedAmount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	if err := money.Check(in.AllocatedAmount); err != nil {
		return nil, err
	}
	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	b := &domain.Budget{
		ProjectID:       projectID,
		Category:        cat,
		AllocatedAmount: in.AllocatedAmount,
		SpentAmount:     decimal.Zero,
		Description:     strings.TrimSpace(in.Description),
	}
	if err := u.budgets.Create(ctx, b); err != nil {
		return nil, err
	}
	dto := ToDTO(*b)
	return &dto, nil
}

// ListByProject returns the budget lines of a project. Roles that cannot view
// everything only see lines of projects they manage; other projects yield an
// empty list.
func (u *Usecase) ListByProject(ctx context.Context, projectID uint64, actor access.Principal) ([]BudgetDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !manages(actor, p) {
		return []BudgetDTO{}, nil
	}
	rows, err := u.budgets.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// List returns every budget line to roles allowed to view everything and only
// lines of managed projects to the rest.
func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]BudgetDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	var (
		rows []domain.Budget
		err  error
	)
	if actor.Can(access.ActionViewAll) {
		rows, err = u.budgets.List(ctx)
	} else {
		rows, err = u.budgets.ListByManager(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64, actor access.Principal) (*BudgetDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	b, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(*b)
	return &dto, nil
}

func manages(actor access.Principal, p *project.Project) bool {
	if actor.Can(access.ActionViewAll) {
		return true
	}
	return p.ManagerID != nil && *p.ManagerID == actor.UserID
}

func toDTOs(rows []domain.Budget) []BudgetDTO {
	out := make([]BudgetDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, ToDTO(b))
	}
	return out
}
