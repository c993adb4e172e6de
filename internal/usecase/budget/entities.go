package budget

import (
	"time"

	domain "ngo-backoffice/internal/domain/budget"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Category        domain.Category // empty means Other
	AllocatedAmount decimal.Decimal
	Description     string
}

type BudgetDTO struct {
	ID              uint64          `json:"id"`
	ProjectID       uint64          `json:"project_id"`
	Category        domain.Category `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	Remaining       decimal.Decimal `json:"remaining"`
	OverBudget      bool            `json:"over_budget"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToDTO adds the derived remaining/over-budget view of b.
func ToDTO(b domain.Budget) BudgetDTO {
	return BudgetDTO{
		ID:              b.ID,
		ProjectID:       b.ProjectID,
		Category:        b.Category,
		AllocatedAmount: b.AllocatedAmount,
		SpentAmount:     b.SpentAmount,
		Remaining:       b.Remaining(),
		OverBudget:      b.SpentAmount.GreaterThan(b.AllocatedAmount),
		Description:     b.Description,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
