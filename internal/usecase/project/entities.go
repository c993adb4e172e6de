package project

import (
	"time"

	"ngo-backoffice/internal/domain/donor"
	domain "ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/user"
	budgetuc "ngo-backoffice/internal/usecase/budget"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Name        string
	Description string
	Location    string
	StartDate   *time.Time
	EndDate     *time.Time
	BudgetTotal decimal.Decimal
	Currency    string        // ISO-4217, defaults to USD
	Status      domain.Status // defaults to PLANNED
	ManagerID   uint64
	DonorIDs    []uint64
}

type ManagerDTO struct {
	ID    uint64    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

type DonorRefDTO struct {
	ID   uint64     `json:"id"`
	Name string     `json:"name"`
	Type donor.Type `json:"type"`
}

type ProjectDTO struct {
	ID              uint64               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Location        string               `json:"location,omitempty"`
	StartDate       string               `json:"start_date,omitempty"`
	EndDate         string               `json:"end_date,omitempty"`
	BudgetTotal     decimal.Decimal      `json:"budget_total"`
	BudgetSpent     decimal.Decimal      `json:"budget_spent"`
	BudgetRemaining decimal.Decimal      `json:"budget_remaining"`
	Currency        string               `json:"currency"`
	Status          domain.Status        `json:"status"`
	Manager         *ManagerDTO          `json:"manager,omitempty"`
	Donors          []DonorRefDTO        `json:"donors"`
	Budgets         []budgetuc.BudgetDTO `json:"budgets,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func toDTO(p *domain.Project) *ProjectDTO {
	out := &ProjectDTO{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Location:        p.Location,
		StartDate:       formatDate(p.StartDate),
		EndDate:         formatDate(p.EndDate),
		BudgetTotal:     p.BudgetTotal,
		BudgetSpent:     p.BudgetSpent,
		BudgetRemaining: p.Remaining(),
		Currency:        p.Currency,
		Status:          p.Status,
		Donors:          make([]DonorRefDTO, 0, len(p.Donors)),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Manager != nil {
		out.Manager = &ManagerDTO{ID: p.Manager.ID, Name: p.Manager.Name, Email: p.Manager.Email, Role: p.Manager.Role}
	}
	for _, d := range p.Donors {
		out.Donors = append(out.Donors, DonorRefDTO{ID: d.ID, Name: d.Name, Type: d.Type})
	}
	for _, b := range p.Budgets {
		out.Budgets = append(out.Budgets, budgetuc.ToDTO(b))
	}
	return out
}
