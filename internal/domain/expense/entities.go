package expense

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("expense not found")
	ErrAlreadyDecided  = errors.New("expense already approved or rejected")
	ErrInvalidDecision = errors.New("decision must be APPROVED or REJECTED")
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrBudgetMismatch  = errors.New("budget does not belong to project")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// ValidDecision reports whether s can be the target of an approval action.
func (s Status) ValidDecision() bool { return s.Terminal() }

// Table: expenses
type Expense struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID       uint64          `gorm:"column:project_id;not null;index:idx_expenses_project_status,priority:1" json:"project_id"`
	BudgetID        uint64          `gorm:"column:budget_id;not null;index:idx_expenses_budget_status,priority:1" json:"budget_id"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"column:description;type:text;not null" json:"description"`
	Date            time.Time       `gorm:"column:date;type:date;not null" json:"date"`
	ReceiptURL      string          `gorm:"column:receipt_url;type:text" json:"receipt_url,omitempty"`
	GPSLat          *float64        `gorm:"column:gps_lat;type:decimal(10,6)" json:"gps_lat,omitempty"`
	GPSLng          *float64        `gorm:"column:gps_lng;type:decimal(10,6)" json:"gps_lng,omitempty"`
	Status          Status          `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index:idx_expenses_project_status,priority:2;index:idx_expenses_budget_status,priority:2" json:"status"`
	CreatedByID     *uint64         `gorm:"column:created_by_id" json:"created_by_id,omitempty"`
	ApprovedByID    *uint64         `gorm:"column:approved_by_id" json:"approved_by_id,omitempty"`
	ApprovedAt      *time.Time      `gorm:"column:approved_at" json:"approved_at,omitempty"`
	ApprovalComment string          `gorm:"column:approval_comment;type:text" json:"approval_comment,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }
