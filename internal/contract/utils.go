package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/pbaettig/gitpulse/schema"
)

// Heat label constants.
const (
	HotValue  = "Hot"  // Very active file
	WarmValue = "Warm" // Active file
	CoolValue = "Cool" // Occasionally touched file
	ColdValue = "Cold" // Rarely touched file
)

// Score thresholds for labels; heat scores are unbounded above.
const (
	labelHot  = 2.0
	labelWarm = 1.0
	labelCool = 0.5
)

// Color variables for console output.
var (
	HotColor  = color.New(color.FgRed, color.Bold)
	WarmColor = color.New(color.FgYellow)
	CoolColor = color.New(color.FgCyan)
	ColdColor = color.New(color.FgBlue)
)

// GetPlainLabel returns a plain text label for a heat score. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= labelHot:
		return HotValue
	case score >= labelWarm:
		return WarmValue
	case score >= labelCool:
		return CoolValue
	default:
		return ColdValue
	}
}

// GetColorLabel returns a colored text label for console output.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)
	switch text {
	case HotValue:
		return HotColor.Sprint(text)
	case WarmValue:
		return WarmColor.Sprint(text)
	case CoolValue:
		return CoolColor.Sprint(text)
	default:
		return ColdColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output based
// on the provided file path. An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_cache.db"
	}
	return filepath.Join(homeDir, ".gitpulse_cache.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for the "..." prefix and at
// least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// TruncateMessage shortens a commit message for table display.
func TruncateMessage(msg string, maxWidth int) string {
	runes := []rune(msg)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return msg
}

// ValidateDatabaseConnectionString checks that server backends carry a
// connection string. SQLite and none need nothing up front.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("cache backend %s requires a connection string (set cache-db-connect)", backend)
		}
	}
	return nil
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
