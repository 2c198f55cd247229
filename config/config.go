// Package config resolves csvcat settings from defaults, an optional YAML
// file and CSVCAT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/reader"
)

// EnvPrefix is prepended to every environment variable key
const EnvPrefix = "CSVCAT"

// DefaultFileName is looked up in the working directory when no config
// file is given
const DefaultFileName = ".csvcat.yaml"

// ErrInvalid is returned by Validate
var ErrInvalid = errors.New("invalid config")

// Config holds the effective settings of one run
type Config struct {
	Format       string    `mapstructure:"format"`
	InputFormat  string    `mapstructure:"input_format"`
	Delimiter    string    `mapstructure:"delimiter"`
	JSONPath     string    `mapstructure:"json_path"`
	Limit        int       `mapstructure:"limit"`
	MaxCellWidth int       `mapstructure:"max_cell_width"`
	Log          LogConfig `mapstructure:"log"`
}

// LogConfig configures diagnostics on stderr and the optional Seq sink
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	SeqURL string `mapstructure:"seq_url"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", output.FormatTable)
	v.SetDefault("input_format", "auto")
	v.SetDefault("delimiter", "")
	v.SetDefault("json_path", "")
	v.SetDefault("limit", 0)
	v.SetDefault("max_cell_width", 0)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.seq_url", "")
}

// Load reads configuration. path names a YAML file that must exist; an
// empty path falls back to DefaultFileName, which may be absent.
// Environment variables override file values, e.g. CSVCAT_FORMAT=csv or
// CSVCAT_LOG_LEVEL=debug.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yaml"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config %s: %w", DefaultFileName, err)
			}
		}
	}

	// log.seq_url -> CSVCAT_LOG_SEQ_URL
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late in a run
func (c *Config) Validate() error {
	if !slices.Contains(output.Formats(), strings.ToLower(c.Format)) {
		return fmt.Errorf("%w: output format %q (supported: %s)", ErrInvalid, c.Format, strings.Join(output.Formats(), ", "))
	}
	if _, err := reader.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalid, c.Limit)
	}
	if c.MaxCellWidth < 0 {
		return fmt.Errorf("%w: max_cell_width must not be negative, got %d", ErrInvalid, c.MaxCellWidth)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q (supported: %s)", ErrInvalid, c.Log.Level, strings.Join(logLevels, ", "))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (supported: text, json)", ErrInvalid, c.Log.Format)
	}
	return nil
}

// DelimiterRune returns the configured field delimiter. Zero means the
// reader picks one from the file extension. "tab" and `\t` name a tab.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalid, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: delimiter %q is not allowed", ErrInvalid, c.Delimiter)
	}
	return r, nil
}
