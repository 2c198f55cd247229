package query

import (
	"fmt"

	"github.com/vegasq/csvcat/dataset"
)

// compare compares two values using the given operator.
//
// Numbers are compared when both sides resolved to KindNumber, otherwise the
// raw texts are compared.
func compare(left Value, operator Operator, right Value) bool {
	if left.Kind == KindNumber && right.Kind == KindNumber {
		return compareNumbers(left.Num, operator, right.Num)
	}
	return compareStrings(left.Text, operator, right.Text)
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator Operator, right float64) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive, byte-wise)
func compareStrings(left string, operator Operator, right string) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// match evaluates the condition against one row. The operator must already
// be valid and literal is the parsed condition value.
func (c Condition) match(row dataset.Row, literal Value) (bool, error) {
	cell, exists := row.Get(c.Column)
	if !exists {
		return false, fmt.Errorf("%w: %q", ErrMissingColumn, c.Column)
	}
	return compare(ParseValue(cell), c.Operator, literal), nil
}

// ApplyFilter returns the rows matching cond, in their original order.
//
// The operator is checked before any row is looked at. A row without the
// condition's column stops the filter with ErrMissingColumn; nothing is
// skipped. The input slice is never modified.
func ApplyFilter(rows []dataset.Row, cond Condition) ([]dataset.Row, error) {
	if !cond.Operator.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, cond.Operator)
	}

	// the literal side is the same for every row
	literal := ParseValue(cond.Value)

	filtered := make([]dataset.Row, 0)
	for i, row := range rows {
		ok, err := cond.match(row, literal)
		if err != nil {
			return nil, fmt.Errorf("%w (row %d)", err, i+1)
		}
		if ok {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}
