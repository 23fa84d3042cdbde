//go:build integration

// Package integration contains integration tests for gitpulse.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"encoding/csv"
	"os/exec"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContributorsVerification runs gitpulse contributors --output csv and
// verifies the per-author commit counts against git shortlog.
func TestContributorsVerification(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	// Get current repo path
	repoPath, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	require.NoError(t, err)
	repoDir := strings.TrimSpace(string(repoPath))

	// Run gitpulse contributors without caching so the numbers come
	// straight from git
	cmd := exec.Command("./gitpulse", "contributors", "--output", "csv", "--cache-backend", "none")
	cmd.Dir = repoDir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err = cmd.Run()
	require.NoError(t, err)

	reported := parseContributorCSV(t, stdout.String())
	require.NotEmpty(t, reported)

	// git shortlog -sn counts commits per author on the current branch
	gitCmd := exec.Command("git", "shortlog", "-sn", "HEAD")
	gitCmd.Dir = repoDir
	gitOutput, err := gitCmd.Output()
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(string(gitOutput)), "\n") {
		fields := strings.SplitN(strings.TrimSpace(line), "\t", 2)
		if len(fields) != 2 {
			continue
		}
		commits, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		require.NoError(t, err)
		name := strings.TrimSpace(fields[1])

		t.Run(name, func(t *testing.T) {
			got, ok := reported[name]
			require.True(t, ok, "author %s missing from gitpulse output", name)
			assert.Equal(t, commits, got, "commit count mismatch for %s", name)
		})
	}
}

// parseContributorCSV extracts author -> commit count from CSV output.
func parseContributorCSV(t *testing.T, output string) map[string]int {
	t.Helper()

	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	counts := make(map[string]int)
	for _, record := range records[1:] { // skip header
		require.Len(t, record, 4)
		commits, err := strconv.Atoi(record[1])
		require.NoError(t, err)
		counts[record[0]] = commits
	}
	return counts
}
