package report

import "context"

type Repository interface {
	Create(ctx context.Context, r *ImpactReport) error
	Save(ctx context.Context, r *ImpactReport) error
	GetByID(ctx context.Context, id uint64) (*ImpactReport, error)
	List(ctx context.Context) ([]ImpactReport, error)
	ListByManager(ctx context.Context, managerID uint64) ([]ImpactReport, error)
}
