package query

import (
	"errors"
	"fmt"
)

// Validation constants to keep expressions within sane bounds
const (
	// MaxExpressionLength is the maximum allowed length of a filter or
	// aggregate expression (64KB)
	MaxExpressionLength = 64 * 1024

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrMalformedCondition is returned when a condition contains none of
	// the recognized operator symbols
	ErrMalformedCondition = errors.New("malformed condition")

	// ErrMalformedAggregate is returned when an aggregate has no '='
	ErrMalformedAggregate = errors.New("malformed aggregate")

	// ErrUnknownOperator is returned when a condition carries an operator
	// outside the supported set
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrMissingColumn is returned when a row lacks the filtered column
	ErrMissingColumn = errors.New("missing column")

	// ErrUnsupportedAggregate is returned for aggregate functions other than
	// avg, min and max
	ErrUnsupportedAggregate = errors.New("unsupported aggregate")

	// ErrExpressionTooLong is returned when an expression exceeds
	// MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateExpression checks the raw length of an expression
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(expr), MaxExpressionLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}
