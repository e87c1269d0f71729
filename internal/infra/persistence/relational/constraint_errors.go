package relational

import (
	"strings"

	"salesboard/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation detects duplicate keys for both drivers. TranslateError covers
// most cases, the message check catches drivers that report raw errors.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // sqlite
		strings.Contains(errMsg, "duplicate key") || // postgres
		strings.Contains(errMsg, "sqlstate 23505")
}

func isCheckConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint")
}
