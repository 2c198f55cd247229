package query

import "strconv"

// Operator is a comparison symbol in a filter condition
type Operator string

const (
	OpEqual        Operator = "="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
)

// operatorPriority is the order in which symbols are searched for in a
// condition. Two-character operators come before their one-character prefix.
var operatorPriority = []Operator{
	OpGreaterEqual,
	OpLessEqual,
	OpGreater,
	OpLess,
	OpEqual,
}

// Valid reports whether o is a supported operator.
func (o Operator) Valid() bool {
	switch o {
	case OpEqual, OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return true
	default:
		return false
	}
}

// String returns the operator symbol
func (o Operator) String() string {
	return string(o)
}

// Condition is a parsed "column OP value" predicate.
type Condition struct {
	Column   string
	Operator Operator
	Value    string
}

// String renders the condition back in its textual form.
func (c Condition) String() string {
	return c.Column + string(c.Operator) + c.Value
}

// Aggregate function names
const (
	FuncAvg = "avg"
	FuncMin = "min"
	FuncMax = "max"
)

// AggregateSpec is a parsed "column=function" aggregate.
//
// Function is kept as written; it is only checked against the supported set
// when the aggregate is computed.
type AggregateSpec struct {
	Column   string
	Function string
}

// Result is the outcome of an aggregation. Valid is false when no row
// contributed a numeric value.
type Result struct {
	Value float64
	Valid bool
}

// String formats the result value, or returns "" when there is none.
func (r Result) String() string {
	if !r.Valid {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}
