package postgres

import (
	"github.com/lib/pq"
	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// ConstraintName returns the violated constraint for postgres errors, empty otherwise
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
