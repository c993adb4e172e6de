package gormstore

import (
	"context"

	projectDomain "ngo-backoffice/internal/domain/project"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct{ db *gorm.DB }

var _ projectDomain.Repository = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

// Create inserts the project row and its project_donors links. Donors must
// already exist; their own rows are not touched.
func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	donors := p.Donors
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		if len(donors) == 0 {
			return nil
		}
		return tx.Model(p).Association("Donors").Append(donors)
	})
	if isUniqueViolation(err) {
		return projectDomain.ErrDuplicateName
	}
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, projectDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProjectRepository) GetDetailed(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Donors").
		Preload("Budgets", func(db *gorm.DB) *gorm.DB { return db.Order("budgets.id ASC") }).
		First(&out, id).Error
	if err != nil {
		return nil, notFound(err, projectDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*projectDomain.Project, error) {
	var out projectDomain.Project
	if err := r.db.WithContext(ctx).Clauses(forUpdate).First(&out, id).Error; err != nil {
		return nil, notFound(err, projectDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, notFound(err, projectDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]projectDomain.Project, error) {
	var out []projectDomain.Project
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Donors").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ProjectRepository) ListByManager(ctx context.Context, managerID uint64) ([]projectDomain.Project, error) {
	var out []projectDomain.Project
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Donors").
		Where("manager_id = ?", managerID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uint64, status projectDomain.Status) error {
	return r.db.WithContext(ctx).
		Model(&projectDomain.Project{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ProjectRepository) SetSpent(ctx context.Context, id uint64, spent decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&projectDomain.Project{}).
		Where("id = ?", id).
		Update("budget_spent", spent).Error
}
