package uow

import (
	"context"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/report"
	"ngo-backoffice/internal/domain/user"
)

// Repos is the set of repositories bound to one transaction.
type Repos struct {
	Projects project.Repository
	Budgets  budget.Repository
	Expenses expense.Repository
	Donors   donor.Repository
	Reports  report.Repository
	Users    user.Repository
}

type UnitOfWork interface {
	// plain tx: everything fn writes commits together or not at all
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the expense row first, then pass it in
	WithinExpenseTx(ctx context.Context, expenseID uint64, fn func(r Repos, e *expense.Expense) error) error
}
