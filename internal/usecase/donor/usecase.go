package donor

import (
	"context"
	"errors"
	"strings"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/uow"
	"ngo-backoffice/pkg/money"
)

const defaultCurrency = "USD"

type Usecase struct {
	donors domain.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(donors domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{donors: donors, uow: tx}
}

// Create registers a donor and links it to existing projects. Every project
// id must resolve before the donor row is written.
func (u *Usecase) Create(ctx context.Context, in CreateInput, actor access.Principal) (*DonorDTO, error) {
	if err := access.Check(actor.Role, access.ActionDonorCreate); err != nil {
		return nil, err
	}
	typ := in.Type
	if typ == "" {
		typ = domain.TypeIndividual
	}
	if !typ.Valid() {
		return nil, domain.ErrInvalidType
	}
	if in.FundedAmount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	if err := money.Check(in.FundedAmount); err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	d := &domain.Donor{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        strings.TrimSpace(in.Phone),
		Organization: strings.TrimSpace(in.Organization),
		Type:         typ,
		FundedAmount: in.FundedAmount,
		Country:      strings.ToUpper(strings.TrimSpace(in.Country)),
		Currency:     currency,
	}

	var linked []uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		switch _, err := r.Donors.GetByEmail(ctx, d.Email); {
		case err == nil:
			return domain.ErrDuplicateEmail
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
		for _, pid := range in.ProjectIDs {
			if _, err := r.Projects.GetByID(ctx, pid); err != nil {
				return err
			}
		}

		if err := r.Donors.Create(ctx, d); err != nil {
			return err
		}
		if err := r.Donors.LinkProjects(ctx, d.ID, in.ProjectIDs); err != nil {
			return err
		}
		var err error
		linked, err = r.Donors.ProjectIDs(ctx, d.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toDTO(d, linked), nil
}

func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]DonorDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	rows, err := u.donors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DonorDTO, 0, len(rows))
	for i := range rows {
		ids, err := u.donors.ProjectIDs(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDTO(&rows[i], ids))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64, actor access.Principal) (*DonorDTO, error) {
	if err := access.Check(actor.Role, access.ActionRead); err != nil {
		return nil, err
	}
	d, err := u.donors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ids, err := u.donors.ProjectIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(d, ids), nil
}
