package expense

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Save(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uint64) (*Expense, error)
	// GetByIDForUpdate locks the expense row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Expense, error)
	List(ctx context.Context) ([]Expense, error)
	ListByManager(ctx context.Context, managerID uint64) ([]Expense, error)

	// Aggregates over APPROVED rows only; zero when none match.
	SumApprovedByBudget(ctx context.Context, budgetID uint64) (decimal.Decimal, error)
	SumApprovedByProject(ctx context.Context, projectID uint64) (decimal.Decimal, error)
}
