package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvcat/config"
	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/logging"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/pipeline"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

var version = "dev"

// cliOptions holds flag values. Flags that mirror config keys only
// override the config when set on the command line.
type cliOptions struct {
	file        string
	where       string
	aggregate   string
	format      string
	inputFormat string
	delimiter   string
	jsonPath    string
	limit       int
	maxWidth    int
	schema      bool
	configPath  string
	logLevel    string
}

// hintError carries extra lines printed after the error message
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() }

func (e *hintError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var he *hintError
	if errors.As(err, &he) && he.hint != "" {
		fmt.Fprintf(w, "%s\n", he.hint)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "csvcat [flags] [file]",
		Short: "Print, filter and aggregate tabular files",
		Long: `csvcat reads a CSV file (or TSV, Parquet, XLSX, JSON, possibly compressed)
and prints it as a table. Rows can be filtered with a simple condition and a
numeric column can be reduced to its average, minimum or maximum.`,
		Example: `  csvcat phones.csv
  csvcat -w "price<500" phones.csv
  csvcat -w "brand=xiaomi" -a "rating=avg" phones.csv
  csvcat -o json "data/**/*.csv.gz"
  csvcat --schema phones.parquet`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "input file or glob pattern")
	flags.StringVarP(&opts.where, "where", "w", "", `filter condition "column<op>value", op is one of = > < >= <=`)
	flags.StringVarP(&opts.aggregate, "aggregate", "a", "", `aggregate "column=function", function is one of avg, min, max`)
	flags.StringVarP(&opts.format, "format", "o", output.FormatTable, "output format: "+strings.Join(output.Formats(), ", "))
	flags.StringVar(&opts.inputFormat, "input-format", "auto", "input format: auto, csv, parquet, xlsx, json, jsonl")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", "", `field delimiter for delimited input, "tab" for tabs (default: from extension)`)
	flags.StringVar(&opts.jsonPath, "json-path", "", "JSONPath selecting the records of a JSON document")
	flags.IntVar(&opts.limit, "limit", 0, "limit number of rows (0 = unlimited)")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "truncate table cells wider than this (0 = no limit)")
	flags.BoolVar(&opts.schema, "schema", false, "show column information instead of data")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./"+config.DefaultFileName+" if present)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.MarkFlagsMutuallyExclusive("schema", "aggregate")

	return cmd
}

// resolveConfig loads the config file and environment, then applies the
// flags the user set explicitly
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("input-format") {
		cfg.InputFormat = opts.inputFormat
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if flags.Changed("json-path") {
		cfg.JSONPath = opts.jsonPath
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.limit
	}
	if flags.Changed("max-width") {
		cfg.MaxCellWidth = opts.maxWidth
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inputPath picks the file from --file or the positional argument
func inputPath(opts *cliOptions, args []string) (string, error) {
	switch {
	case opts.file != "" && len(args) == 1 && args[0] != opts.file:
		return "", fmt.Errorf("input given twice: --file %q and argument %q", opts.file, args[0])
	case opts.file != "":
		return opts.file, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", &hintError{
			err:  errors.New("missing input file"),
			hint: "Usage: csvcat [flags] <file>",
		}
	}
}

func run(cmd *cobra.Command, args []string, opts *cliOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		SeqURL: cfg.Log.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer cleanup()

	if err := runWithLogger(cmd, args, opts, cfg, logger); err != nil {
		logger.Info("run failed", "error", err)
		return err
	}
	return nil
}

func runWithLogger(cmd *cobra.Command, args []string, opts *cliOptions, cfg *config.Config, logger *slog.Logger) error {
	path, err := inputPath(opts, args)
	if err != nil {
		return err
	}

	// Validate has already accepted both
	delimiter, _ := cfg.DelimiterRune()
	inputFormat, _ := reader.ParseFormat(cfg.InputFormat)

	ds, err := reader.Load(path, reader.Options{
		Format:    inputFormat,
		Delimiter: delimiter,
		JSONPath:  cfg.JSONPath,
		Logger:    logger,
	})
	if err != nil {
		return loadError(path, err)
	}

	// render into a buffer so a failure leaves stdout untouched
	var buf bytes.Buffer
	formatter, err := output.New(cfg.Format, &buf, output.Options{MaxCellWidth: cfg.MaxCellWidth})
	if err != nil {
		return err
	}

	if opts.schema {
		if err := renderSchema(formatter, ds, opts.where, logger); err != nil {
			return err
		}
	} else {
		res, err := pipeline.Run(ds, pipeline.Options{
			Where:     opts.where,
			Aggregate: opts.aggregate,
			Limit:     cfg.Limit,
			Logger:    logger,
		})
		if err != nil {
			return queryError(ds, err)
		}
		if res.Aggregate != nil {
			err = formatter.FormatAggregate(res.Aggregate.Label, res.Aggregate.Result)
		} else {
			err = formatter.Format(res.Dataset)
		}
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	_, err = io.Copy(cmd.OutOrStdout(), &buf)
	return err
}

// renderSchema writes column information for the rows left after where
func renderSchema(formatter output.Formatter, ds *dataset.Dataset, where string, logger *slog.Logger) error {
	res, err := pipeline.Run(ds, pipeline.Options{Where: where, Logger: logger})
	if err != nil {
		return queryError(ds, err)
	}
	schema, err := reader.SchemaDataset(reader.DescribeColumns(res.Dataset))
	if err != nil {
		return err
	}
	return formatter.Format(schema)
}

func loadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &hintError{
			err:  fmt.Errorf("file '%s' not found", path),
			hint: "Please check the file path and try again.",
		}
	}
	return err
}

func queryError(ds *dataset.Dataset, err error) error {
	if errors.Is(err, query.ErrMissingColumn) && ds.Columns.Len() > 0 {
		return &hintError{
			err:  err,
			hint: "Available columns: " + strings.Join(ds.Header(), ", "),
		}
	}
	return err
}
