package gormstore

import (
	"context"

	expenseDomain "ngo-backoffice/internal/domain/expense"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository struct{ db *gorm.DB }

var _ expenseDomain.Repository = (*ExpenseRepository)(nil)

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository { return &ExpenseRepository{db: db} }

func (r *ExpenseRepository) Create(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) Save(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint64) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, expenseDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ExpenseRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&out, id).Error; err != nil {
		return nil, notFound(err, expenseDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ExpenseRepository) List(ctx context.Context) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ExpenseRepository) ListByManager(ctx context.Context, managerID uint64) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = expenses.project_id").
		Where("projects.manager_id = ?", managerID).
		Order("expenses.date DESC, expenses.id DESC").
		Find(&out).Error
	return out, err
}

func (r *ExpenseRepository) SumApprovedByBudget(ctx context.Context, budgetID uint64) (decimal.Decimal, error) {
	return r.sumApproved(ctx, "budget_id", budgetID)
}

func (r *ExpenseRepository) SumApprovedByProject(ctx context.Context, projectID uint64) (decimal.Decimal, error) {
	return r.sumApproved(ctx, "project_id", projectID)
}

// sumApproved lets the database add the decimal column; the driver hands the
// result back as text or a number and decimal.Decimal scans either.
func (r *ExpenseRepository) sumApproved(ctx context.Context, column string, id uint64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&expenseDomain.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(column+" = ? AND status = ?", id, expenseDomain.StatusApproved).
		Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}
