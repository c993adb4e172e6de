package donor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Donor) error
	GetByID(ctx context.Context, id uint64) (*Donor, error)
	GetByEmail(ctx context.Context, email string) (*Donor, error)
	// GetByIDs returns ErrNotFound unless every id resolves.
	GetByIDs(ctx context.Context, ids []uint64) ([]Donor, error)
	List(ctx context.Context) ([]Donor, error)
	// ProjectIDs lists the projects funded by the donor.
	ProjectIDs(ctx context.Context, donorID uint64) ([]uint64, error)
	LinkProjects(ctx context.Context, donorID uint64, projectIDs []uint64) error
}
