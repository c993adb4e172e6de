package donor

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("donor not found")
	ErrDuplicateEmail = errors.New("donor email already exists")
	ErrInvalidType    = errors.New("donor type must be individual or institutional")
	ErrNegativeAmount = errors.New("funded amount must not be negative")
)

type Type string

const (
	TypeIndividual    Type = "individual"
	TypeInstitutional Type = "institutional"
)

func (t Type) Valid() bool { return t == TypeIndividual || t == TypeInstitutional }

// Table: donors. Project links live in the project_donors join table owned
// by the project side.
type Donor struct {
	ID           uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"column:name;size:190;not null" json:"name"`
	Email        string          `gorm:"column:email;size:190;not null;uniqueIndex:ux_donors_email" json:"email"`
	Phone        string          `gorm:"column:phone;size:40" json:"phone,omitempty"`
	Organization string          `gorm:"column:organization;size:190" json:"organization,omitempty"`
	Type         Type            `gorm:"column:type;type:varchar(16);not null;default:'individual'" json:"type"`
	FundedAmount decimal.Decimal `gorm:"column:funded_amount;type:decimal(15,2);not null;default:0" json:"funded_amount"`
	Country      string          `gorm:"column:country;size:2" json:"country,omitempty"`
	Currency     string          `gorm:"column:currency;size:3;not null;default:'USD'" json:"currency"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donor) TableName() string { return "donors" }
