package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"hot", 2.5, HotValue},
		{"hot boundary", 2.0, HotValue},
		{"warm", 1.5, WarmValue},
		{"warm boundary", 1.0, WarmValue},
		{"cool", 0.7, CoolValue},
		{"cool boundary", 0.5, CoolValue},
		{"cold", 0.1, ColdValue},
		{"zero", 0.0, ColdValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	for _, score := range []float64{2.5, 1.5, 0.7, 0.1} {
		assert.Contains(t, GetColorLabel(score), GetPlainLabel(score))
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "short path untouched",
			path:     "main.go",
			maxWidth: 20,
			expected: "main.go",
		},
		{
			name:     "long path keeps suffix",
			path:     "internal/outwriter/output_contributors.go",
			maxWidth: 20,
			expected: "...t_contributors.go",
		},
		{
			name:     "width too small to truncate",
			path:     "internal/outwriter/output.go",
			maxWidth: 3,
			expected: "internal/outwriter/output.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 3 {
				assert.LessOrEqual(t, len(got), tt.maxWidth)
			}
		})
	}
}

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "short", TruncateMessage("short", 10))
	assert.Equal(t, "a long...", TruncateMessage("a long commit message", 9))
}

func TestParseBoolString(t *testing.T) {
	truthy := []string{"yes", "YES", "true", "1"}
	for _, s := range truthy {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got, s)
	}

	falsy := []string{"no", "False", "0"}
	for _, s := range falsy {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got, s)
	}

	_, err := ParseBoolString("maybe")
	require.Error(t, err)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/gitpulse"))

	err := ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a connection string")
}

func TestGetCacheDBFilePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(GetCacheDBFilePath(), ".gitpulse_cache.db"))
}
