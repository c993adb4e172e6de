package budget

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("budget not found")
	ErrInvalidCategory = errors.New("invalid budget category")
	ErrNegativeAmount  = errors.New("allocated amount must not be negative")
)

type Category string

const (
	CategoryTransport Category = "Transport"
	CategoryFood      Category = "Food"
	CategoryLogistics Category = "Logistics"
	CategoryTraining  Category = "Training"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryEquipment Category = "Equipment"
	CategoryStaff     Category = "Staff"
	CategoryUtilities Category = "Utilities"
	CategoryOther     Category = "Other"
)

// Categories lists the closed set of budget categories in display order.
var Categories = []Category{
	CategoryTransport, CategoryFood, CategoryLogistics, CategoryTraining, CategoryHealth,
	CategoryEducation, CategoryEquipment, CategoryStaff, CategoryUtilities, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Table: budgets. SpentAmount is derived from approved expenses and is only
// written by the reconciler.
type Budget struct {
	ID              uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID       uint64          `gorm:"column:project_id;not null;index:idx_budgets_project" json:"project_id"`
	Category        Category        `gorm:"column:category;type:varchar(32);not null;default:'Other'" json:"category"`
	AllocatedAmount decimal.Decimal `gorm:"column:allocated_amount;type:decimal(15,2);not null" json:"allocated_amount"`
	SpentAmount     decimal.Decimal `gorm:"column:spent_amount;type:decimal(15,2);not null;default:0" json:"spent_amount"`
	Description     string          `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Budget) TableName() string { return "budgets" }

// Remaining is the unspent part of the allocation; negative when overspent.
func (b Budget) Remaining() decimal.Decimal { return b.AllocatedAmount.Sub(b.SpentAmount) }
