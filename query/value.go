package query

import (
	"errors"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// String returns the kind name
func (k Kind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// Value is a cell or literal resolved for comparison. Text always holds the
// raw input; Num is only meaningful for KindNumber.
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// ParseValue resolves raw text into a Value, trying a numeric parse first.
// Surrounding whitespace is ignored by the numeric parse only.
func ParseValue(raw string) Value {
	if num, ok := toFloat64(raw); ok {
		return Value{Kind: KindNumber, Num: num, Text: raw}
	}
	return Value{Kind: KindText, Text: raw}
}

// toFloat64 parses s as a float64 if possible
func toFloat64(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out-of-range literals still parse, to ±Inf or zero
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// isHexLiteral reports whether s is a hexadecimal literal such as "0x1p4".
// Those are text, not numbers.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
