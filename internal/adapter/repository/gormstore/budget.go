package gormstore

import (
	"context"

	budgetDomain "ngo-backoffice/internal/domain/budget"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetRepository struct{ db *gorm.DB }

var _ budgetDomain.Repository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *gorm.DB) *BudgetRepository { return &BudgetRepository{db: db} }

func (r *BudgetRepository) Create(ctx context.Context, b *budgetDomain.Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BudgetRepository) GetByID(ctx context.Context, id uint64) (*budgetDomain.Budget, error) {
	var out budgetDomain.Budget
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, budgetDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *BudgetRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*budgetDomain.Budget, error) {
	var out budgetDomain.Budget
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&out, id).Error; err != nil {
		return nil, notFound(err, budgetDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *BudgetRepository) ListByProject(ctx context.Context, projectID uint64) ([]budgetDomain.Budget, error) {
	var out []budgetDomain.Budget
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *BudgetRepository) List(ctx context.Context) ([]budgetDomain.Budget, error) {
	var out []budgetDomain.Budget
	err := r.db.WithContext(ctx).Order("project_id ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *BudgetRepository) ListByManager(ctx context.Context, managerID uint64) ([]budgetDomain.Budget, error) {
	var out []budgetDomain.Budget
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = budgets.project_id").
		Where("projects.manager_id = ?", managerID).
		Order("budgets.project_id ASC, budgets.id ASC").
		Find(&out).Error
	return out, err
}

func (r *BudgetRepository) SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&budgetDomain.Budget{}).
		Where("id = ?", id).
		Update("spent_amount", spent).Error
}
