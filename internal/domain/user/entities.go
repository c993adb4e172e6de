package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleAgent   Role = "AGENT"
	RoleFinance Role = "FINANCE"
	RoleDonor   Role = "DONOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleFinance, RoleDonor:
		return true
	}
	return false
}

// Table: users
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:120;not null" json:"name"`
	Email     string    `gorm:"column:email;size:190;not null;uniqueIndex:ux_users_email" json:"email"`
	Password  string    `gorm:"column:password;size:100;not null" json:"-"` // bcrypt hash
	Role      Role      `gorm:"column:role;type:varchar(16);not null;default:'AGENT'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
