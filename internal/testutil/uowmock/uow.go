package uowmock

import (
	"context"
	"errors"

	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinExpenseTxFn func(ctx context.Context, expenseID uint64, fn func(r uow.Repos, e *expense.Expense) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every unit of work directly against repos, with no
// transaction. WithinExpenseTx loads the expense through
// repos.Expenses.GetByIDForUpdate like the real implementation does.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinExpenseTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *expense.Expense) error) error {
			e, err := repos.Expenses.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, e)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinExpenseTx(fn func(context.Context, uint64, func(uow.Repos, *expense.Expense) error) error) *UoW {
	m.WithinExpenseTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinExpenseTx(ctx context.Context, expenseID uint64, fn func(r uow.Repos, e *expense.Expense) error) error {
	if m.WithinExpenseTxFn != nil {
		return m.WithinExpenseTxFn(ctx, expenseID, fn)
	}
	return errUnimplemented
}
