package donor

import (
	"time"

	domain "ngo-backoffice/internal/domain/donor"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Type         domain.Type // defaults to individual
	FundedAmount decimal.Decimal
	Country      string // ISO-3166 alpha-2
	Currency     string // ISO-4217, defaults to USD
	ProjectIDs   []uint64
}

type DonorDTO struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Organization string          `json:"organization,omitempty"`
	Type         domain.Type     `json:"type"`
	FundedAmount decimal.Decimal `json:"funded_amount"`
	Country      string          `json:"country,omitempty"`
	Currency     string          `json:"currency"`
	ProjectIDs   []uint64        `json:"project_ids"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toDTO(d *domain.Donor, projectIDs []uint64) *DonorDTO {
	if projectIDs == nil {
		projectIDs = []uint64{}
	}
	return &DonorDTO{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Organization: d.Organization,
		Type:         d.Type,
		FundedAmount: d.FundedAmount,
		Country:      d.Country,
		Currency:     d.Currency,
		ProjectIDs:   projectIDs,
		CreatedAt:    d.CreatedAt,
	}
}
