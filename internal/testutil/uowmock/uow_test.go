package uowmock

import (
	"context"
	"errors"
	"testing"

	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/uow"
	"ngo-backoffice/internal/testutil/budgetmock"
	"ngo-backoffice/internal/testutil/expensemock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	exps := &expensemock.Repo{}
	buds := &budgetmock.Repo{}
	repos := uow.Repos{Expenses: exps, Budgets: buds}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Expenses != exps || r.Budgets != buds {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New()
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinExpenseTx(ctx, 1, func(uow.Repos, *expense.Expense) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinExpenseTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinExpenseTx_LoadsLockedRow(t *testing.T) {
	ctx := context.Background()
	locked := &expense.Expense{ID: 9, Status: expense.StatusPending}
	var gotID uint64
	repos := uow.Repos{Expenses: &expensemock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*expense.Expense, error) {
			gotID = id
			return locked, nil
		},
	}}

	err := Passthrough(repos).WithinExpenseTx(ctx, 9, func(_ uow.Repos, e *expense.Expense) error {
		if e != locked {
			t.Fatalf("expense not forwarded: %+v", e)
		}
		return nil
	})
	if err != nil || gotID != 9 {
		t.Fatalf("err=%v id=%d", err, gotID)
	}
}

func TestPassthrough_WithinExpenseTx_LoadError(t *testing.T) {
	repos := uow.Repos{Expenses: &expensemock.Repo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*expense.Expense, error) {
			return nil, expense.ErrNotFound
		},
	}}
	called := false
	err := Passthrough(repos).WithinExpenseTx(context.Background(), 1, func(uow.Repos, *expense.Expense) error {
		called = true
		return nil
	})
	if !errors.Is(err, expense.ErrNotFound) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New().
		WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinExpenseTx(func(context.Context, uint64, func(uow.Repos, *expense.Expense) error) error { return nil })
	if m.WithinTxFn == nil || m.WithinExpenseTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}
	m.Reset()
	if m.WithinTxFn != nil || m.WithinExpenseTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
