package gormstore

import (
	"context"
	"testing"
	"time"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/user"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedUser(t *testing.T, db *gorm.DB, email string, role user.Role) *user.User {
	t.Helper()
	u := &user.User{Name: "U " + email, Email: email, Password: "x", Role: role}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedProject(t *testing.T, db *gorm.DB, name string, managerID *uint64) *project.Project {
	t.Helper()
	p := &project.Project{
		Name:        name,
		BudgetTotal: dec("1000"),
		Currency:    project.DefaultCurrency,
		Status:      project.StatusActive,
		ManagerID:   managerID,
	}
	if err := NewProjectRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func seedBudget(t *testing.T, db *gorm.DB, projectID uint64, allocated string) *budget.Budget {
	t.Helper()
	b := &budget.Budget{ProjectID: projectID, Category: budget.CategoryTransport, AllocatedAmount: dec(allocated)}
	if err := NewBudgetRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("seed budget: %v", err)
	}
	return b
}

func seedExpense(t *testing.T, db *gorm.DB, b *budget.Budget, amount string, st expense.Status) *expense.Expense {
	t.Helper()
	e := &expense.Expense{
		ProjectID:   b.ProjectID,
		BudgetID:    b.ID,
		Amount:      dec(amount),
		Description: "fuel",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      st,
	}
	if err := NewExpenseRepository(db).Create(context.Background(), e); err != nil {
		t.Fatalf("seed expense: %v", err)
	}
	return e
}
