// Package pipeline composes a csvcat run: filter the loaded dataset, then
// either aggregate one column or hand back the remaining rows.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// Options selects the stages of a run. Empty strings skip a stage.
type Options struct {
	// Where is a "column<op>value" filter condition
	Where string

	// Aggregate is a "column=function" aggregate
	Aggregate string

	// Limit caps the rows of a dataset result. Zero means no limit. It
	// does not apply to aggregates.
	Limit int

	// Logger receives stage diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// AggregateOutcome is a single labelled scalar
type AggregateOutcome struct {
	// Label is the function name as written by the user
	Label  string
	Result query.Result
}

// Result holds exactly one of Dataset or Aggregate
type Result struct {
	Dataset   *dataset.Dataset
	Aggregate *AggregateOutcome
}

// Run applies opts to ds. Both expressions are parsed before any row is
// touched, so a malformed aggregate fails even when the filter is valid.
// ds itself is never modified.
func Run(ds *dataset.Dataset, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", opts.Limit)
	}

	var (
		cond    query.Condition
		hasCond bool
		agg     query.AggregateSpec
		hasAgg  bool
		err     error
	)
	if opts.Where != "" {
		if cond, err = query.ParseCondition(opts.Where); err != nil {
			return nil, err
		}
		hasCond = true
	}
	if opts.Aggregate != "" {
		if agg, err = query.ParseAggregate(opts.Aggregate); err != nil {
			return nil, err
		}
		hasAgg = true
	}

	rows := ds.Rows
	if hasCond {
		rows, err = query.ApplyFilter(rows, cond)
		if err != nil {
			return nil, err
		}
		log.Debug("filter applied", "condition", cond.String(), "rows_in", ds.Len(), "rows_out", len(rows))
	}

	if hasAgg {
		result, err := query.Aggregate(rows, agg.Column, agg.Function)
		if err != nil {
			return nil, err
		}
		log.Debug("aggregate computed", "column", agg.Column, "function", agg.Function, "rows", len(rows), "valid", result.Valid)
		return &Result{Aggregate: &AggregateOutcome{Label: agg.Function, Result: result}}, nil
	}

	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	return &Result{Dataset: ds.WithRows(rows)}, nil
}
