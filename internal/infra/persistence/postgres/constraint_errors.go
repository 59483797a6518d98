package postgres

import (
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

// constraintName returns the violated constraint reported by PostgreSQL, if any.
func constraintName(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

// databaseError wraps an unexpected driver error, naming the violated constraint when there is one.
func databaseError(err error, details string) error {
	switch {
	case isNotNullConstraintViolation(err):
		details += ": missing required value"
	case isCheckConstraintViolation(err):
		details += ": check constraint " + constraintName(err) + " violated"
	case isForeignKeyConstraintViolation(err):
		details += ": invalid reference " + constraintName(err)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
