package expense

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/uow"
	applog "ngo-backoffice/internal/log"
	"ngo-backoffice/internal/usecase/reconcile"
	"ngo-backoffice/pkg/media"
	"ngo-backoffice/pkg/money"
)

type Usecase struct {
	expenses domain.Repository
	uow      uow.UnitOfWork
	rc       *reconcile.Reconciler
	media    *media.Normalizer
	log      *slog.Logger
	now      func() time.Time
}

func NewUsecase(expenses domain.Repository, tx uow.UnitOfWork, rc *reconcile.Reconciler, urls *media.Normalizer, logger *slog.Logger) *Usecase {
	return &Usecase{
		expenses: expenses,
		uow:      tx,
		rc:       rc,
		media:    urls,
		log:      applog.Component(logger, applog.ComponentExpense),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create records a PENDING expense against a budget of the project and
// reconciles the scope in the same transaction. Project and budget are
// resolved before anything is written.
func (u *Usecase) Create(ctx context.Context, projectID, budgetID uint64, in CreateInput, actor access.Principal) (*ExpenseDTO, error) {
	if err := access.Check(actor.Role, access.ActionExpenseCreate); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if err := money.Check(in.Amount); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = u.now()
	}
	e := &domain.Expense{
		ProjectID:   projectID,
		BudgetID:    budgetID,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        truncateToDate(date),
		ReceiptURL:  strings.TrimSpace(in.ReceiptURL),
		GPSLat:      in.GPSLat,
		GPSLng:      in.GPSLng,
		Status:      domain.StatusPending,
	}
	if actor.UserID != 0 {
		creator := actor.UserID
		e.CreatedByID = &creator
	}

	var totals reconcile.Totals
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Projects.GetByID(ctx, projectID); err != nil {
			return err
		}
		b, err := r.Budgets.GetByID(ctx, budgetID)
		if err != nil {
			return err
		}
		if b.ProjectID != projectID {
			return domain.ErrBudgetMismatch
		}

		if err := r.Expenses.Create(ctx, e); err != nil {
			return err
		}
		totals, err = u.rc.Apply(ctx, r, reconcile.Scope{ProjectID: projectID, BudgetID: budgetID})
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "expense created",
		applog.FieldExpenseID, e.ID,
		applog.FieldProjectID, projectID,
		applog.FieldBudgetID, budgetID,
		applog.FieldUserID, actor.UserID,
		"amount", e.Amount.StringFixed(2),
	)
	dto := u.toDTO(e)
	dto.Aggregates = &totals
	return dto, nil
}

// Decide moves a PENDING expense to APPROVED or REJECTED and reconciles its
// scope in the same transaction. A decided expense is final.
func (u *Usecase) Decide(ctx context.Context, expenseID uint64, in DecideInput, actor access.Principal) (*ExpenseDTO, error) {
	if err := access.Check(actor.Role, access.ActionExpenseDecide); err != nil {
		return nil, err
	}
	if !in.Status.ValidDecision() {
		return nil, domain.ErrInvalidDecision
	}

	var (
		decided *domain.Expense
		totals  reconcile.Totals
	)
	err := u.uow.WithinExpenseTx(ctx, expenseID, func(r uow.Repos, e *domain.Expense) error {
		if e.Status.Terminal() {
			return domain.ErrAlreadyDecided
		}

		now := u.now()
		approver := actor.UserID
		e.Status = in.Status
		e.ApprovedByID = &approver
		e.ApprovedAt = &now
		e.ApprovalComment = strings.TrimSpace(in.Comment)
		if err := r.Expenses.Save(ctx, e); err != nil {
			return err
		}

		var err error
		totals, err = u.rc.Apply(ctx, r, reconcile.Scope{ProjectID: e.ProjectID, BudgetID: e.BudgetID})
		if err != nil {
			return err
		}
		decided = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.InfoContext(ctx, "expense decided",
		applog.FieldExpenseID, decided.ID,
		applog.FieldUserID, actor.UserID,
		"status", decided.Status,
		"budget_spent", totals.BudgetSpent.StringFixed(2),
		"project_spent", totals.ProjectSpent.StringFixed(2),
	)
	dto := u.toDTO(decided)
	dto.Aggregates = &totals
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64, actor access.Principal) (*ExpenseDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	e, err := u.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toDTO(e), nil
}

// List returns every expense to roles allowed to view everything and only
// expenses of managed projects to the rest.
func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]ExpenseDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	var (
		rows []domain.Expense
		err  error
	)
	if actor.Can(access.ActionViewAll) {
		rows, err = u.expenses.List(ctx)
	} else {
		rows, err = u.expenses.ListByManager(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *u.toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) toDTO(e *domain.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:              e.ID,
		ProjectID:       e.ProjectID,
		BudgetID:        e.BudgetID,
		Amount:          e.Amount,
		Description:     e.Description,
		Date:            e.Date.UTC().Format(dateLayout),
		ReceiptURL:      u.media.URL(e.ReceiptURL),
		GPSLat:          e.GPSLat,
		GPSLng:          e.GPSLng,
		Status:          e.Status,
		CreatedByID:     e.CreatedByID,
		ApprovedByID:    e.ApprovedByID,
		ApprovedAt:      e.ApprovedAt,
		ApprovalComment: e.ApprovalComment,
		CreatedAt:       e.CreatedAt,
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
