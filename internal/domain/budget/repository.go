package budget

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, b *Budget) error
	GetByID(ctx context.Context, id uint64) (*Budget, error)
	// GetByIDForUpdate locks the budget row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Budget, error)
	ListByProject(ctx context.Context, projectID uint64) ([]Budget, error)
	List(ctx context.Context) ([]Budget, error)
	// ListByManager returns budgets of projects managed by managerID.
	ListByManager(ctx context.Context, managerID uint64) ([]Budget, error)
	// SetSpent overwrites the derived spent amount.
	SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error
}
