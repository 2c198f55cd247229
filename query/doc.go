// Package query implements the filter and aggregate expressions of csvcat.
//
// Two tiny languages are supported:
//   - Conditions of the form "column OP value", where OP is one of
//     =, >, <, >=, <=
//   - Aggregates of the form "column=function", where function is one of
//     avg, min, max
//
// Cells are raw text. Comparisons decide per row whether to compare as
// numbers or as text: when both the cell and the condition value parse as
// floating-point numbers the comparison is numeric, otherwise it is a plain
// byte-wise string comparison.
//
// # Filtering
//
//	cond, err := query.ParseCondition("price<500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := query.ApplyFilter(ds.Rows, cond)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A row lacking the condition's column aborts the whole filter with
// ErrMissingColumn.
//
// # Aggregation
//
//	spec, err := query.ParseAggregate("rating=avg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := query.Aggregate(ds.Rows, spec.Column, spec.Function)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Valid {
//	    fmt.Println(result.Value)
//	}
//
// Unlike filtering, aggregation silently skips rows where the column is
// missing or not numeric. When nothing is left the result is not Valid.
//
// # Errors
//
// All errors wrap one of the package's sentinel values and can be matched
// with errors.Is:
//
//	if errors.Is(err, query.ErrMissingColumn) {
//	    // ...
//	}
package query
