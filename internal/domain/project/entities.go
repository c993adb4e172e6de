package project

import (
	"errors"
	"time"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/report"
	"ngo-backoffice/internal/domain/user"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrDuplicateName = errors.New("project name already exists")
	ErrInvalidStatus = errors.New("invalid project status")
	ErrInvalidName   = errors.New("project name must be at least 3 characters")
	ErrInvalidPeriod = errors.New("project end date is before its start date")
	ErrNegativeTotal = errors.New("project budget total must not be negative")
)

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

const DefaultCurrency = "USD"

// Table: projects. BudgetSpent is derived from approved expenses and is only
// written by the reconciler. Budgets, expenses and reports are removed with
// their project.
type Project struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;size:190;not null;uniqueIndex:ux_projects_name" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description,omitempty"`
	Location    string          `gorm:"column:location;size:255" json:"location,omitempty"`
	StartDate   *time.Time      `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate     *time.Time      `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	BudgetTotal decimal.Decimal `gorm:"column:budget_total;type:decimal(15,2);not null;default:0" json:"budget_total"`
	Currency    string          `gorm:"column:currency;size:3;not null;default:'USD'" json:"currency"`
	BudgetSpent decimal.Decimal `gorm:"column:budget_spent;type:decimal(15,2);not null;default:0" json:"budget_spent"`
	Status      Status          `gorm:"column:status;type:varchar(16);not null;default:'PLANNED'" json:"status"`
	ManagerID   *uint64         `gorm:"column:manager_id;index" json:"manager_id,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Manager  *user.User            `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Donors   []donor.Donor         `gorm:"many2many:project_donors;constraint:OnDelete:CASCADE" json:"donors,omitempty"`
	Budgets  []budget.Budget       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"budgets,omitempty"`
	Expenses []expense.Expense     `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Reports  []report.ImpactReport `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Project) TableName() string { return "projects" }

// Remaining is the part of the total budget not yet consumed by approved
// expenses.
func (p Project) Remaining() decimal.Decimal { return p.BudgetTotal.Sub(p.BudgetSpent) }
