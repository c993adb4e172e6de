package gormstore

import (
	"context"
	"database/sql"

	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

type UoWOption func(*GormUoW)

// WithIsolation opens every unit of work at the given isolation level.
// sql.LevelDefault leaves the choice to the driver.
func WithIsolation(level sql.IsolationLevel) UoWOption {
	return func(u *GormUoW) {
		if level == sql.LevelDefault {
			u.opts = nil
			return
		}
		u.opts = &sql.TxOptions{Isolation: level}
	}
}

func NewGormUoW(db *gorm.DB, opts ...UoWOption) *GormUoW {
	u := &GormUoW{db: db}
	for _, o := range opts {
		o(u)
	}
	return u
}

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Projects: &ProjectRepository{db: tx},
		Budgets:  &BudgetRepository{db: tx},
		Expenses: &ExpenseRepository{db: tx},
		Donors:   &DonorRepository{db: tx},
		Reports:  &ReportRepository{db: tx},
		Users:    &UserRepository{db: tx},
	}
}

func (u *GormUoW) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if u.opts != nil {
		return u.db.WithContext(ctx).Transaction(fn, u.opts)
	}
	return u.db.WithContext(ctx).Transaction(fn)
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinExpenseTx(ctx context.Context, expenseID uint64, fn func(r uow.Repos, e *expense.Expense) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the expense row up-front so concurrent decisions queue behind us
		e, err := r.Expenses.GetByIDForUpdate(ctx, expenseID)
		if err != nil {
			return err
		}
		return fn(r, e)
	})
}
