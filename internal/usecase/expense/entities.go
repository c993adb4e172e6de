package expense

import (
	"time"

	domain "ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/usecase/reconcile"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time // stored as a calendar date; zero means today (UTC)
	ReceiptURL  string
	GPSLat      *float64
	GPSLng      *float64
}

type DecideInput struct {
	Status  domain.Status // APPROVED or REJECTED
	Comment string
}

type ExpenseDTO struct {
	ID              uint64            `json:"id"`
	ProjectID       uint64            `json:"project_id"`
	BudgetID        uint64            `json:"budget_id"`
	Amount          decimal.Decimal   `json:"amount"`
	Description     string            `json:"description"`
	Date            string            `json:"date"` // YYYY-MM-DD
	ReceiptURL      string            `json:"receipt_url,omitempty"`
	GPSLat          *float64          `json:"gps_lat,omitempty"`
	GPSLng          *float64          `json:"gps_lng,omitempty"`
	Status          domain.Status     `json:"status"`
	CreatedByID     *uint64           `json:"created_by_id,omitempty"`
	ApprovedByID    *uint64           `json:"approved_by_id,omitempty"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
	ApprovalComment string            `json:"approval_comment,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	Aggregates      *reconcile.Totals `json:"aggregates,omitempty"` // set on writes
}

const dateLayout = "2006-01-02"
