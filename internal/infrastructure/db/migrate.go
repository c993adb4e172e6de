package db

import (
	"fmt"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/donor"
	"ngo-backoffice/internal/domain/expense"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/report"
	"ngo-backoffice/internal/domain/user"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&user.User{},
		&donor.Donor{},
		&project.Project{},
		&budget.Budget{},
		&expense.Expense{},
		&report.ImpactReport{},
	}
}

// Migrate creates or alters tables to match the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
