package query

import (
	"fmt"
	"strconv"

	"github.com/vegasq/csvcat/dataset"
)

// Aggregate reduces the numeric values of column under function.
//
// Rows where the column is absent or does not parse as a number are skipped
// without error. If no value is left the result is not Valid, whatever the
// function. Otherwise avg is rounded to two decimals, min and max are
// returned as-is, and any other function fails with ErrUnsupportedAggregate.
func Aggregate(rows []dataset.Row, column, function string) (Result, error) {
	values := collectNumbers(rows, column)
	if len(values) == 0 {
		return Result{}, nil
	}

	switch function {
	case FuncAvg:
		return Result{Value: roundTo2(mean(values)), Valid: true}, nil
	case FuncMin:
		return Result{Value: minOf(values), Valid: true}, nil
	case FuncMax:
		return Result{Value: maxOf(values), Valid: true}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q (supported: avg, min, max)", ErrUnsupportedAggregate, function)
	}
}

// collectNumbers extracts the numeric cells of column
func collectNumbers(rows []dataset.Row, column string) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		cell, exists := row.Get(column)
		if !exists {
			continue
		}
		v := ParseValue(cell)
		if v.Kind != KindNumber {
			continue
		}
		values = append(values, v.Num)
	}
	return values
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// roundTo2 rounds to two decimal places. FormatFloat rounds the exact binary
// value to nearest with ties to even, so 2.675 (stored as 2.67499...) gives 2.67.
func roundTo2(x float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return rounded
}
