package project

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Create inserts the project and its donor links.
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint64) (*Project, error)
	// GetDetailed preloads manager, donors and budgets.
	GetDetailed(ctx context.Context, id uint64) (*Project, error)
	// GetByIDForUpdate locks the project row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByManager(ctx context.Context, managerID uint64) ([]Project, error)
	UpdateStatus(ctx context.Context, id uint64, status Status) error
	// SetSpent overwrites the derived spent total.
	SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error
}
