package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

// rootOnlyClient satisfies GitClient for validation tests; only RepoRoot
// is ever reached.
type rootOnlyClient struct {
	root string
	err  error
}

func (c *rootOnlyClient) Run(context.Context, string, ...string) ([]byte, error) {
	return nil, nil
}

func (c *rootOnlyClient) HeadCommit(context.Context, string) (string, error) { return "", nil }

func (c *rootOnlyClient) RemoteURL(context.Context, string) (string, error) { return "", nil }

func (c *rootOnlyClient) RootCommit(context.Context, string) (string, error) { return "", nil }

func (c *rootOnlyClient) RepoRoot(context.Context, string) (string, error) {
	return c.root, c.err
}

func (c *rootOnlyClient) CollectCommits(context.Context, string) ([]schema.CommitRecord, error) {
	return nil, nil
}

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr:         ".",
		CacheBackend:        string(schema.SQLiteBackend),
		HeatDecayDays:       DefaultHeatDecayDays,
		HeatFrequencyWeight: DefaultHeatFrequencyWeight,
		HeatRecencyWeight:   DefaultHeatRecencyWeight,
		MaxFiles:            DefaultMaxFilesDisplayed,
		MinWordLength:       DefaultMinWordLength,
		MaxWords:            DefaultMaxWords,
		MinWordSize:         DefaultMinWordSize,
		MaxWordSize:         DefaultMaxWordSize,
		HourlyThreshold:     DefaultHourlyThresholdHours,
		Output:              string(schema.TextOut),
		Precision:           DefaultPrecision,
		Color:               "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{
			name:   "valid minimal config",
			mutate: func(*ConfigRawInput) {},
		},
		{
			name:        "invalid cache backend",
			mutate:      func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			expectError: "invalid cache backend",
		},
		{
			name:        "malformed idle timeout",
			mutate:      func(in *ConfigRawInput) { in.CacheIdleTimeout = "soon" },
			expectError: "invalid cache-idle-timeout",
		},
		{
			name:        "negative max age",
			mutate:      func(in *ConfigRawInput) { in.CacheMaxAge = "-1h" },
			expectError: "cache timeouts must be positive",
		},
		{
			name:        "zero decay days",
			mutate:      func(in *ConfigRawInput) { in.HeatDecayDays = 0 },
			expectError: "heat-decay-days must be positive",
		},
		{
			name: "weights do not sum to one",
			mutate: func(in *ConfigRawInput) {
				in.HeatFrequencyWeight = 0.5
				in.HeatRecencyWeight = 0.6
			},
			expectError: "heat weights must sum to 1.0",
		},
		{
			name:        "zero max files",
			mutate:      func(in *ConfigRawInput) { in.MaxFiles = 0 },
			expectError: "max-files must be greater than 0",
		},
		{
			name:        "zero min word length",
			mutate:      func(in *ConfigRawInput) { in.MinWordLength = 0 },
			expectError: "min-word-length must be at least 1",
		},
		{
			name: "inverted word sizes",
			mutate: func(in *ConfigRawInput) {
				in.MinWordSize = 50
				in.MaxWordSize = 10
			},
			expectError: "word sizes must satisfy",
		},
		{
			name:        "zero hourly threshold",
			mutate:      func(in *ConfigRawInput) { in.HourlyThreshold = 0 },
			expectError: "hourly-threshold must be at least 1 hour",
		},
		{
			name:        "invalid output mode",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: "invalid output format",
		},
		{
			name:        "precision out of range",
			mutate:      func(in *ConfigRawInput) { in.Precision = 3 },
			expectError: "precision must be 1 or 2",
		},
		{
			name:        "invalid color flag",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: "invalid boolean string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)

			cfg := &Config{}
			client := &rootOnlyClient{root: "/repos/demo"}
			err := ProcessAndValidate(context.Background(), cfg, client, input)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/repos/demo", cfg.RepoPath)
			assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
			assert.Equal(t, DefaultCacheIdleTimeout, cfg.CacheIdleTimeout)
			assert.Equal(t, DefaultCacheMaxAge, cfg.CacheMaxAge)
			assert.True(t, cfg.UseColor)
		})
	}
}

func TestProcessAndValidateBackendNormalization(t *testing.T) {
	input := validRawInput()
	input.CacheBackend = "PostgreSQL"
	input.CacheIdleTimeout = "12h"
	input.CacheMaxAge = "72h"

	cfg := &Config{}
	err := ProcessAndValidate(context.Background(), cfg, &rootOnlyClient{root: "/repos/demo"}, input)
	require.NoError(t, err)
	assert.Equal(t, schema.PostgreSQLBackend, cfg.CacheBackend)
	assert.Equal(t, 12*time.Hour, cfg.CacheIdleTimeout)
	assert.Equal(t, 72*time.Hour, cfg.CacheMaxAge)
}

func TestProcessAndValidateRepoRootError(t *testing.T) {
	input := validRawInput()

	cfg := &Config{}
	client := &rootOnlyClient{err: assert.AnError}
	err := ProcessAndValidate(context.Background(), cfg, client, input)
	require.Error(t, err)
}

func TestConfigClone(t *testing.T) {
	original := &Config{RepoPath: "/repos/demo", MaxFilesDisplayed: 50}
	clone := original.Clone()

	clone.RepoPath = "/repos/other"
	clone.MaxFilesDisplayed = 5

	assert.Equal(t, "/repos/demo", original.RepoPath)
	assert.Equal(t, 50, original.MaxFilesDisplayed)
}
