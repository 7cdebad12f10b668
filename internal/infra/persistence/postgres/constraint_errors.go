package postgres

import (
	"strings"

	"github.com/BrayanOfficiel/juice-finder/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err was caused by a unique
// constraint on the underlying table.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}

// isForeignKeyConstraintViolation reports whether err was caused by a
// foreign key constraint, typically a reference to a missing row.
func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}
