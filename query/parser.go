package query

import (
	"fmt"
	"strings"
)

// ParseCondition parses a filter of the form "column OP value".
//
// Operators are searched for in the order >=, <=, >, <, = and the text is
// split at the first occurrence of the first symbol found, so "a>=1" is
// never read as "a" > "=1". Both sides are trimmed. The column is not checked
// against any header here; an unknown column surfaces when filtering.
func ParseCondition(text string) (Condition, error) {
	if err := ValidateExpression(text); err != nil {
		return Condition{}, err
	}

	for _, op := range operatorPriority {
		column, value, found := strings.Cut(text, string(op))
		if !found {
			continue
		}

		column = strings.TrimSpace(column)
		if err := ValidateColumnName(column); err != nil {
			return Condition{}, err
		}

		return Condition{
			Column:   column,
			Operator: op,
			Value:    strings.TrimSpace(value),
		}, nil
	}

	return Condition{}, fmt.Errorf("%w: %q (expected column<op>value with op one of >=, <=, >, <, =)", ErrMalformedCondition, text)
}

// ParseAggregate parses an aggregate of the form "column=function".
//
// The text is split at the first '=' and both sides are trimmed. The
// function name is returned as written and validated by Aggregate.
func ParseAggregate(text string) (AggregateSpec, error) {
	if err := ValidateExpression(text); err != nil {
		return AggregateSpec{}, err
	}

	column, function, found := strings.Cut(text, "=")
	if !found {
		return AggregateSpec{}, fmt.Errorf("%w: %q (example: rating=avg)", ErrMalformedAggregate, text)
	}

	column = strings.TrimSpace(column)
	if err := ValidateColumnName(column); err != nil {
		return AggregateSpec{}, err
	}

	return AggregateSpec{
		Column:   column,
		Function: strings.TrimSpace(function),
	}, nil
}
