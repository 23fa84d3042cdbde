// Package gitio implements the local git collaborators: the commit
// source that materializes history into commit records and the
// repository state fingerprint used as a cache key.
package gitio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// headLookupTimeout bounds the strict HEAD lookup. An unreachable
// repository means no cache decision can be made safely, so the lookup
// fails loudly instead of degrading to a miss.
const headLookupTimeout = 5 * time.Second

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ contract.GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git '%v' exit: %s", strings.Join(fullArgs, " "), strings.TrimSpace(string(exitErr.Stderr)))
	} else if err != nil {
		return nil, fmt.Errorf("git '%v' unknown: %w", strings.Join(fullArgs, " "), err)
	}
	return out, nil
}

// HeadCommit returns the current HEAD commit hash under a hard timeout.
// The subprocess is killed on timeout, and both timeout and non-zero
// exit surface as errors to the caller.
func (c *LocalGitClient) HeadCommit(ctx context.Context, repoPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, headLookupTimeout)
	defer cancel()

	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("head commit lookup for %s timed out after %s", repoPath, headLookupTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("head commit lookup failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoteURL returns the origin remote URL. Repositories without a
// configured remote return an error, which fingerprinting treats as an
// omitted input rather than a failure.
func (c *LocalGitClient) RemoteURL(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RootCommit returns the first commit hash reachable from HEAD.
func (c *LocalGitClient) RootCommit(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", err
	}
	// A repository with multiple roots lists one per line; the first is
	// stable for an unchanged history.
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return "", errors.New("no root commit found")
	}
	return lines[0], nil
}

// RepoRoot returns the absolute path to the repository root containing
// the given context path.
func (c *LocalGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CollectCommits returns the full commit history as commit records,
// oldest first. Line deltas come from --numstat; binary files count as
// zero lines.
func (c *LocalGitClient) CollectCommits(ctx context.Context, repoPath string) ([]schema.CommitRecord, error) {
	args := []string{
		"log",
		"--reverse",
		"--numstat",
		"--date=unix",
		"--pretty=format:" + commitDelimiter + "%H|%an|%ae|%at|%s",
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to collect commit history: %w", err)
	}
	return parseCommitLog(out)
}
