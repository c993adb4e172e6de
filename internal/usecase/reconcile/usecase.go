// Package reconcile recomputes the derived spend columns of budgets and
// projects from their approved expenses.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/uow"
	applog "ngo-backoffice/internal/log"

	"github.com/shopspring/decimal"
)

// currencyScale matches the decimal(15,2) money columns.
const currencyScale = 2

type Reconciler struct {
	uow uow.UnitOfWork
	log *slog.Logger
}

func New(tx uow.UnitOfWork, logger *slog.Logger) *Reconciler {
	return &Reconciler{uow: tx, log: applog.Component(logger, applog.ComponentReconcile)}
}

// Apply recomputes one scope using the caller's transaction. Rows are
// locked project first, then budget. Sums are always derived from scratch,
// so running Apply again on an unchanged store is a no-op.
func (rc *Reconciler) Apply(ctx context.Context, r uow.Repos, s Scope) (Totals, error) {
	if _, err := r.Projects.GetByIDForUpdate(ctx, s.ProjectID); err != nil {
		return Totals{}, err
	}
	b, err := r.Budgets.GetByIDForUpdate(ctx, s.BudgetID)
	if err != nil {
		return Totals{}, err
	}
	if b.ProjectID != s.ProjectID {
		return Totals{}, expense.ErrBudgetMismatch
	}

	budgetSpent, err := rc.applyBudget(ctx, r, s.BudgetID)
	if err != nil {
		return Totals{}, err
	}
	projectSpent, err := rc.applyProject(ctx, r, s.ProjectID)
	if err != nil {
		return Totals{}, err
	}

	rc.log.DebugContext(ctx, "scope reconciled",
		applog.FieldProjectID, s.ProjectID,
		applog.FieldBudgetID, s.BudgetID,
		"project_spent", projectSpent.StringFixed(currencyScale),
		"budget_spent", budgetSpent.StringFixed(currencyScale),
	)
	return Totals{
		ProjectID:    s.ProjectID,
		BudgetID:     s.BudgetID,
		ProjectSpent: projectSpent,
		BudgetSpent:  budgetSpent,
	}, nil
}

// Run reconciles one scope in its own transaction.
func (rc *Reconciler) Run(ctx context.Context, s Scope) (Totals, error) {
	var out Totals
	err := rc.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := rc.Apply(ctx, r, s)
		if err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return Totals{}, err
	}
	return out, nil
}

// RunProject recomputes every budget of a project and the project total in
// one transaction. It repairs drift left by writes that bypassed the
// service.
func (rc *Reconciler) RunProject(ctx context.Context, projectID uint64) (*ProjectTotals, error) {
	var out *ProjectTotals
	err := rc.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Projects.GetByIDForUpdate(ctx, projectID); err != nil {
			return err
		}
		budgets, err := r.Budgets.ListByProject(ctx, projectID)
		if err != nil {
			return fmt.Errorf("list budgets: %w", err)
		}

		res := &ProjectTotals{ProjectID: projectID, Budgets: make([]BudgetTotal, 0, len(budgets))}
		// ListByProject is ordered by id, which keeps lock order stable
		for _, b := range budgets {
			if _, err := r.Budgets.GetByIDForUpdate(ctx, b.ID); err != nil {
				return err
			}
			spent, err := rc.applyBudget(ctx, r, b.ID)
			if err != nil {
				return err
			}
			res.Budgets = append(res.Budgets, BudgetTotal{BudgetID: b.ID, SpentAmount: spent})
		}

		if res.ProjectSpent, err = rc.applyProject(ctx, r, projectID); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	rc.log.InfoContext(ctx, "project reconciled",
		applog.FieldProjectID, projectID,
		"budgets", len(out.Budgets),
		"project_spent", out.ProjectSpent.StringFixed(currencyScale),
	)
	return out, nil
}

func (rc *Reconciler) applyBudget(ctx context.Context, r uow.Repos, budgetID uint64) (decimal.Decimal, error) {
	sum, err := r.Expenses.SumApprovedByBudget(ctx, budgetID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum approved for budget %d: %w", budgetID, err)
	}
	sum = sum.Round(currencyScale)
	if err := r.Budgets.SetSpent(ctx, budgetID, sum); err != nil {
		return decimal.Zero, fmt.Errorf("write budget %d spent: %w", budgetID, err)
	}
	return sum, nil
}

func (rc *Reconciler) applyProject(ctx context.Context, r uow.Repos, projectID uint64) (decimal.Decimal, error) {
	sum, err := r.Expenses.SumApprovedByProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum approved for project %d: %w", projectID, err)
	}
	sum = sum.Round(currencyScale)
	if err := r.Projects.SetSpent(ctx, projectID, sum); err != nil {
		return decimal.Zero, fmt.Errorf("write project %d spent: %w", projectID, err)
	}
	return sum, nil
}
