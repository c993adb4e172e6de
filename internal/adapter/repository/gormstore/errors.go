package gormstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notFound maps gorm.ErrRecordNotFound onto the caller's domain sentinel.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// isUniqueViolation recognises duplicate-key errors across the supported
// drivers. ErrDuplicatedKey is only produced when TranslateError is on.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // sqlite, postgres
		strings.Contains(msg, "duplicate key") || // postgres
		strings.Contains(msg, "duplicate entry") // mysql
}

// forUpdate is a no-op on sqlite, which has no row locks.
var forUpdate = clause.Locking{Strength: "UPDATE"}
