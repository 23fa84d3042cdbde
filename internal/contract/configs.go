package contract

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pbaettig/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultCacheIdleTimeout = 7 * 24 * time.Hour
	DefaultCacheMaxAge      = 30 * 24 * time.Hour

	DefaultHeatDecayDays       = 30.0
	DefaultHeatFrequencyWeight = 0.6
	DefaultHeatRecencyWeight   = 0.4
	DefaultMaxFilesDisplayed   = 50

	DefaultMinWordLength = 3
	DefaultMaxWords      = 50
	DefaultMinWordSize   = 10
	DefaultMaxWordSize   = 100

	DefaultHourlyThresholdHours = 48

	DefaultPrecision = 1

	// weightTolerance absorbs float noise when checking that the two
	// heat weights sum to 1.0.
	weightTolerance = 1e-9
)

// Config holds the validated runtime configuration. The core trusts it
// as-is; all parsing and validation happens in ProcessAndValidate.
type Config struct {
	RepoPath string // Absolute path to the Git repository

	CacheBackend     schema.DatabaseBackend
	CacheDBConnect   string        // Connection string, or SQLite file path override
	CacheIdleTimeout time.Duration // Entry expires this long after its last access
	CacheMaxAge      time.Duration // Entry expires this long after creation, regardless of access

	HeatDecayDays       float64 // Recency decay constant in days
	HeatFrequencyWeight float64 // Weight of commit count in the heat score
	HeatRecencyWeight   float64 // Weight of recency in the heat score
	MaxFilesDisplayed   int     // Heat ranking truncation

	MinWordLength int // Tokens shorter than this are discarded
	MaxWords      int // Word frequency table truncation
	MinWordSize   int // Lower bound of the scaled display size
	MaxWordSize   int // Upper bound of the scaled display size

	HourlyThresholdHours int // Repo spans under this bucket hourly, otherwise daily

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	UseColor   bool
}

// Clone returns a copy of the configuration for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw values from all sources (file, env,
// flags). Viper unmarshals into this struct; ProcessAndValidate turns it
// into a Config.
type ConfigRawInput struct {
	RepoPathStr string `mapstructure:"-"` // Positional argument, not a flag

	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	CacheIdleTimeout string `mapstructure:"cache-idle-timeout"`
	CacheMaxAge      string `mapstructure:"cache-max-age"`

	HeatDecayDays       float64 `mapstructure:"heat-decay-days"`
	HeatFrequencyWeight float64 `mapstructure:"heat-frequency-weight"`
	HeatRecencyWeight   float64 `mapstructure:"heat-recency-weight"`
	MaxFiles            int     `mapstructure:"max-files"`

	MinWordLength int `mapstructure:"min-word-length"`
	MaxWords      int `mapstructure:"max-words"`
	MinWordSize   int `mapstructure:"min-word-size"`
	MaxWordSize   int `mapstructure:"max-word-size"`

	HourlyThreshold int `mapstructure:"hourly-threshold"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	// --- 1. Cache backend and expiration ---
	backend := schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect

	var err error
	cfg.CacheIdleTimeout, err = parseDurationWithDefault(input.CacheIdleTimeout, DefaultCacheIdleTimeout)
	if err != nil {
		return fmt.Errorf("invalid cache-idle-timeout '%s': %w", input.CacheIdleTimeout, err)
	}
	cfg.CacheMaxAge, err = parseDurationWithDefault(input.CacheMaxAge, DefaultCacheMaxAge)
	if err != nil {
		return fmt.Errorf("invalid cache-max-age '%s': %w", input.CacheMaxAge, err)
	}
	if cfg.CacheIdleTimeout <= 0 || cfg.CacheMaxAge <= 0 {
		return fmt.Errorf("cache timeouts must be positive (idle %s, max-age %s)", cfg.CacheIdleTimeout, cfg.CacheMaxAge)
	}

	// --- 2. Heat weights ---
	if input.HeatDecayDays <= 0 {
		return fmt.Errorf("heat-decay-days must be positive (received %v)", input.HeatDecayDays)
	}
	if math.Abs(input.HeatFrequencyWeight+input.HeatRecencyWeight-1.0) > weightTolerance {
		return fmt.Errorf("heat weights must sum to 1.0 (frequency %v + recency %v)",
			input.HeatFrequencyWeight, input.HeatRecencyWeight)
	}
	if input.MaxFiles <= 0 {
		return fmt.Errorf("max-files must be greater than 0 (received %d)", input.MaxFiles)
	}
	cfg.HeatDecayDays = input.HeatDecayDays
	cfg.HeatFrequencyWeight = input.HeatFrequencyWeight
	cfg.HeatRecencyWeight = input.HeatRecencyWeight
	cfg.MaxFilesDisplayed = input.MaxFiles

	// --- 3. Word processing ---
	if input.MinWordLength < 1 {
		return fmt.Errorf("min-word-length must be at least 1 (received %d)", input.MinWordLength)
	}
	if input.MaxWords < 1 {
		return fmt.Errorf("max-words must be at least 1 (received %d)", input.MaxWords)
	}
	if input.MinWordSize <= 0 || input.MaxWordSize < input.MinWordSize {
		return fmt.Errorf("word sizes must satisfy 0 < min <= max (received %d..%d)", input.MinWordSize, input.MaxWordSize)
	}
	cfg.MinWordLength = input.MinWordLength
	cfg.MaxWords = input.MaxWords
	cfg.MinWordSize = input.MinWordSize
	cfg.MaxWordSize = input.MaxWordSize

	// --- 4. Series threshold ---
	if input.HourlyThreshold < 1 {
		return fmt.Errorf("hourly-threshold must be at least 1 hour (received %d)", input.HourlyThreshold)
	}
	cfg.HourlyThresholdHours = input.HourlyThreshold

	// --- 5. Output ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.UseColor, err = ParseBoolString(input.Color)
	if err != nil {
		return err
	}

	// --- 6. Repository path resolution ---
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	root, err := client.RepoRoot(ctx, searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = root

	return nil
}

// parseDurationWithDefault parses a Go duration string, falling back to
// the default when the input is empty.
func parseDurationWithDefault(s string, def time.Duration) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
