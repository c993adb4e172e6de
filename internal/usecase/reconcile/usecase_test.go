package reconcile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/uow"
	"ngo-backoffice/internal/testutil/budgetmock"
	"ngo-backoffice/internal/testutil/expensemock"
	"ngo-backoffice/internal/testutil/projectmock"
	"ngo-backoffice/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeStore records the calls made by the reconciler in order.
type fakeStore struct {
	calls        []string
	budgetSum    decimal.Decimal
	projectSum   decimal.Decimal
	budgetOwner  uint64
	sumErr       error
	wroteBudget  decimal.Decimal
	wroteProject decimal.Decimal
}

func (f *fakeStore) repos() uow.Repos {
	return uow.Repos{
		Projects: &projectmock.Repo{
			GetByIDForUpdateFn: func(_ context.Context, id uint64) (*project.Project, error) {
				f.calls = append(f.calls, "lock project")
				if id == 404 {
					return nil, project.ErrNotFound
				}
				return &project.Project{ID: id}, nil
			},
			SetSpentFn: func(_ context.Context, _ uint64, v decimal.Decimal) error {
				f.calls = append(f.calls, "set project")
				f.wroteProject = v
				return nil
			},
		},
		Budgets: &budgetmock.Repo{
			GetByIDForUpdateFn: func(_ context.Context, id uint64) (*budget.Budget, error) {
				f.calls = append(f.calls, "lock budget")
				if id == 404 {
					return nil, budget.ErrNotFound
				}
				return &budget.Budget{ID: id, ProjectID: f.budgetOwner}, nil
			},
			SetSpentFn: func(_ context.Context, _ uint64, v decimal.Decimal) error {
				f.calls = append(f.calls, "set budget")
				f.wroteBudget = v
				return nil
			},
			ListByProjectFn: func(_ context.Context, projectID uint64) ([]budget.Budget, error) {
				return []budget.Budget{{ID: 1, ProjectID: projectID}, {ID: 2, ProjectID: projectID}}, nil
			},
		},
		Expenses: &expensemock.Repo{
			SumApprovedByBudgetFn: func(context.Context, uint64) (decimal.Decimal, error) {
				f.calls = append(f.calls, "sum budget")
				return f.budgetSum, f.sumErr
			},
			SumApprovedByProjectFn: func(context.Context, uint64) (decimal.Decimal, error) {
				f.calls = append(f.calls, "sum project")
				return f.projectSum, nil
			},
		},
	}
}

func TestApply_LocksThenWritesBothAggregates(t *testing.T) {
	f := &fakeStore{budgetSum: dec("80"), projectSum: dec("140.005"), budgetOwner: 7}
	rc := New(nil, nil)

	got, err := rc.Apply(context.Background(), f.repos(), Scope{ProjectID: 7, BudgetID: 3})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	wantCalls := []string{"lock project", "lock budget", "sum budget", "set budget", "sum project", "set project"}
	if !reflect.DeepEqual(f.calls, wantCalls) {
		t.Fatalf("calls = %v\nwant   %v", f.calls, wantCalls)
	}
	if !got.BudgetSpent.Equal(dec("80")) || !f.wroteBudget.Equal(dec("80")) {
		t.Fatalf("budget spent = %s (wrote %s)", got.BudgetSpent, f.wroteBudget)
	}
	// Round is half away from zero
	if !got.ProjectSpent.Equal(dec("140.01")) || !f.wroteProject.Equal(dec("140.01")) {
		t.Fatalf("project spent = %s (wrote %s)", got.ProjectSpent, f.wroteProject)
	}
	if got.ProjectID != 7 || got.BudgetID != 3 {
		t.Fatalf("scope not echoed: %+v", got)
	}
}

func TestApply_Errors(t *testing.T) {
	boom := errors.New("db down")
	tests := []struct {
		name      string
		scope     Scope
		store     *fakeStore
		wantErr   error
		wantWrite bool
	}{
		{"missing project", Scope{ProjectID: 404, BudgetID: 1}, &fakeStore{}, project.ErrNotFound, false},
		{"missing budget", Scope{ProjectID: 1, BudgetID: 404}, &fakeStore{budgetOwner: 1}, budget.ErrNotFound, false},
		{"budget of another project", Scope{ProjectID: 1, BudgetID: 2}, &fakeStore{budgetOwner: 9}, expense.ErrBudgetMismatch, false},
		{"sum fails", Scope{ProjectID: 1, BudgetID: 2}, &fakeStore{budgetOwner: 1, sumErr: boom}, boom, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(nil, nil).Apply(context.Background(), tc.store.repos(), tc.scope)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			for _, c := range tc.store.calls {
				if c == "set budget" || c == "set project" {
					t.Fatalf("aggregate written despite error: %v", tc.store.calls)
				}
			}
		})
	}
}

func TestRun_UsesOwnTransaction(t *testing.T) {
	f := &fakeStore{budgetSum: dec("20"), projectSum: dec("60"), budgetOwner: 1}
	txCalls := 0
	tx := &uowmock.UoW{WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
		txCalls++
		return fn(f.repos())
	}}

	got, err := New(tx, nil).Run(context.Background(), Scope{ProjectID: 1, BudgetID: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if txCalls != 1 {
		t.Fatalf("WithinTx called %d times", txCalls)
	}
	if !got.ProjectSpent.Equal(dec("60")) {
		t.Fatalf("project spent = %s", got.ProjectSpent)
	}
}

func TestRun_PropagatesTxError(t *testing.T) {
	boom := errors.New("begin failed")
	tx := &uowmock.UoW{WithinTxFn: func(context.Context, func(uow.Repos) error) error { return boom }}
	if _, err := New(tx, nil).Run(context.Background(), Scope{}); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
}

func TestRunProject_AllBudgetsThenProject(t *testing.T) {
	f := &fakeStore{budgetSum: dec("5"), projectSum: dec("10")}
	tx := uowmock.Passthrough(f.repos())

	got, err := New(tx, nil).RunProject(context.Background(), 3)
	if err != nil {
		t.Fatalf("RunProject: %v", err)
	}
	wantCalls := []string{
		"lock project",
		"lock budget", "sum budget", "set budget",
		"lock budget", "sum budget", "set budget",
		"sum project", "set project",
	}
	if !reflect.DeepEqual(f.calls, wantCalls) {
		t.Fatalf("calls = %v\nwant   %v", f.calls, wantCalls)
	}
	if len(got.Budgets) != 2 || !got.ProjectSpent.Equal(dec("10")) {
		t.Fatalf("totals = %+v", got)
	}
}

func TestRunProject_MissingProject(t *testing.T) {
	f := &fakeStore{}
	_, err := New(uowmock.Passthrough(f.repos()), nil).RunProject(context.Background(), 404)
	if !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
