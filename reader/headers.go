package reader

import (
	"strings"
)

// utf8BOM is stripped from the first header cell of delimited input
const utf8BOM = "\ufeff"

// excelColumnName converts a 0-based index to Excel-style column name.
// Examples: 0 -> A, 25 -> Z, 26 -> AA, 701 -> ZZ
func excelColumnName(index int) string {
	result := ""
	index++

	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}

	return result
}

// NormalizeHeaders gives blank header cells distinct names so the header
// can key a dataset: two empty names would otherwise collide as duplicate
// columns. Blank cells become Unnamed_A, Unnamed_B, ... in order; other
// names are kept byte for byte, spaces included, since filters address
// columns by exact name.
//
//	Input:  ["name", "", "age", "  "]
//	Output: ["name", "Unnamed_A", "age", "Unnamed_B"]
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	emptyCount := 0

	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			normalized[i] = "Unnamed_" + excelColumnName(emptyCount)
			emptyCount++
		} else {
			normalized[i] = h
		}
	}

	return normalized
}
