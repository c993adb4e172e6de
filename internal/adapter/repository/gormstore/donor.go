package gormstore

import (
	"context"

	donorDomain "ngo-backoffice/internal/domain/donor"

	"gorm.io/gorm"
)

type DonorRepository struct{ db *gorm.DB }

var _ donorDomain.Repository = (*DonorRepository)(nil)

func NewDonorRepository(db *gorm.DB) *DonorRepository { return &DonorRepository{db: db} }

func (r *DonorRepository) Create(ctx context.Context, d *donorDomain.Donor) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if isUniqueViolation(err) {
			return donorDomain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *DonorRepository) GetByID(ctx context.Context, id uint64) (*donorDomain.Donor, error) {
	var out donorDomain.Donor
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, donorDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DonorRepository) GetByEmail(ctx context.Context, email string) (*donorDomain.Donor, error) {
	var out donorDomain.Donor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&out).Error; err != nil {
		return nil, notFound(err, donorDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *DonorRepository) GetByIDs(ctx context.Context, ids []uint64) ([]donorDomain.Donor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []donorDomain.Donor
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) != len(uniqueIDs(ids)) {
		return nil, donorDomain.ErrNotFound
	}
	return out, nil
}

func (r *DonorRepository) List(ctx context.Context) ([]donorDomain.Donor, error) {
	var out []donorDomain.Donor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DonorRepository) ProjectIDs(ctx context.Context, donorID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Table("project_donors").
		Where("donor_id = ?", donorID).
		Order("project_id ASC").
		Pluck("project_id", &ids).Error
	return ids, err
}

func (r *DonorRepository) LinkProjects(ctx context.Context, donorID uint64, projectIDs []uint64) error {
	if len(projectIDs) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(projectIDs))
	for _, pid := range uniqueIDs(projectIDs) {
		rows = append(rows, map[string]any{"project_id": pid, "donor_id": donorID})
	}
	return r.db.WithContext(ctx).Table("project_donors").Create(rows).Error
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
