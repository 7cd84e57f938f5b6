package database

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Constants for identifier validation.
const (
	MaxIdentifierLength = 128
)

// Sentinel errors for common failure conditions.
var (
	ErrUnknownTable         = errors.New("table not found in catalog")
	ErrUnknownColumn        = errors.New("column not found in table")
	ErrUnknownQuery         = errors.New("query label not found in catalog")
	ErrNoPrimaryKey         = errors.New("table has no single-column primary key")
	ErrValidation           = errors.New("invalid field value")
	ErrMissingRequiredField = errors.New("required field is empty")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrQueryExecution       = errors.New("query execution failed")
	ErrEmptySearchTerm      = errors.New("search term cannot be empty")
	ErrEmptyIdentifier      = errors.New("identifier cannot be empty")
	ErrIdentifierTooLong    = errors.New("identifier exceeds maximum length")
	ErrInvalidCharacter     = errors.New("identifier contains invalid characters")
)

// UnknownTableErr returns an error indicating a table was not found.
func UnknownTableErr(table string) error {
	return fmt.Errorf("%w: %s", ErrUnknownTable, table)
}

// UnknownColumnErr returns an error indicating a column was not found.
func UnknownColumnErr(table, column string) error {
	return fmt.Errorf("%w: %s in table %s", ErrUnknownColumn, column, table)
}

// UnknownQueryErr returns an error indicating a catalog label was not found.
func UnknownQueryErr(label string) error {
	return fmt.Errorf("%w: %q", ErrUnknownQuery, label)
}

// NoPrimaryKeyErr returns an error indicating a table cannot be addressed by
// a single key column.
func NoPrimaryKeyErr(table string) error {
	return fmt.Errorf("%w: %s", ErrNoPrimaryKey, table)
}

// ValidationErr returns an error indicating raw input failed a field's type
// class check.
func ValidationErr(field string, class TypeClass, raw string) error {
	return fmt.Errorf("%w: %q is not a valid %s for field %s", ErrValidation, raw, class, field)
}

// MissingRequiredFieldErr returns an error indicating a NOT NULL field was
// left blank at save time.
func MissingRequiredFieldErr(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
}

// wrapWriteErr classifies a driver error from a write statement. Constraint
// failures (unique, not-null, foreign key, check) become
// ErrConstraintViolation with the driver message preserved for display.
func wrapWriteErr(err error) error {
	if strings.Contains(err.Error(), "constraint failed") {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}

// wrapQueryErr classifies a driver error from a read statement.
func wrapQueryErr(err error) error {
	return fmt.Errorf("%w: %v", ErrQueryExecution, err)
}

// ValidateIdentifier validates a table or column name. Identifiers reaching
// the statement builders normally come from the introspected catalog; this
// check fences anything that arrives from free text instead.
func ValidateIdentifier(name string) error {
	if name == "" {
		return ErrEmptyIdentifier
	}
	if len(name) > MaxIdentifierLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrIdentifierTooLong, len(name), MaxIdentifierLength)
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return fmt.Errorf("%w: identifier must start with letter or underscore", ErrInvalidCharacter)
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return fmt.Errorf("%w: '%c' at position %d", ErrInvalidCharacter, r, i)
			}
		}
	}
	return nil
}
