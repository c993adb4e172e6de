package gormstore

import (
	"context"

	reportDomain "ngo-backoffice/internal/domain/report"

	"gorm.io/gorm"
)

type ReportRepository struct{ db *gorm.DB }

var _ reportDomain.Repository = (*ReportRepository)(nil)

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) Create(ctx context.Context, rep *reportDomain.ImpactReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ReportRepository) Save(ctx context.Context, rep *reportDomain.ImpactReport) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*reportDomain.ImpactReport, error) {
	var out reportDomain.ImpactReport
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, reportDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ReportRepository) List(ctx context.Context) ([]reportDomain.ImpactReport, error) {
	var out []reportDomain.ImpactReport
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ReportRepository) ListByManager(ctx context.Context, managerID uint64) ([]reportDomain.ImpactReport, error) {
	var out []reportDomain.ImpactReport
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = impact_reports.project_id").
		Where("projects.manager_id = ?", managerID).
		Order("impact_reports.date DESC, impact_reports.id DESC").
		Find(&out).Error
	return out, err
}
