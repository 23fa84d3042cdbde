// Package core has the metric calculators and the report orchestration.
// Every calculator is a pure transform over an immutable commit list;
// none depends on another calculator's output.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/pbaettig/gitpulse/internal/classify"
	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/gitio"
	"github.com/pbaettig/gitpulse/internal/outwriter"
	"github.com/pbaettig/gitpulse/schema"
)

// Caller-contract violations. An empty input to these calculators is a
// bug in the caller, not a vacuous result.
var (
	ErrNoCommits  = errors.New("commit list is empty")
	ErrNoMessages = errors.New("message list is empty")
)

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// BuildReport runs every calculator over the (possibly cached) commit
// history and bundles the results.
func BuildReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheManager) (*schema.ReportResult, error) {
	commits, fingerprint, err := LoadCommits(ctx, cfg, client, cache)
	if err != nil {
		return nil, err
	}

	files := classify.NewExtensionClassifier()
	messages := classify.NewMessageClassifier()

	contributors, err := ContributorStats(commits)
	if err != nil {
		return nil, err
	}
	words, err := ProcessCommitMessages(commitMessages(commits), cfg)
	if err != nil {
		return nil, err
	}

	averages := AverageLinesChanged(commits, messages)
	result := &schema.ReportResult{
		Contributors:    contributors,
		LowestAverages:  LowestAverages(averages),
		HighestAverages: HighestAverages(averages),
		TimeSeries:      TimeSeries(commits, cfg, files),
		LinearSeries:    LinearSeries(commits),
		FileHeat:        FileHeat(commits, cfg, files, time.Now()),
		TopBySize:       TopFilesBySize(commits, files),
		TopByChurn:      TopFilesByChurn(commits, files),
		Awards:          AllAwards(commits, messages),
		Words:           words,
	}

	storeFileAnalyses(cfg, cache, fingerprint, FileAnalyses(commits, files))
	return result, nil
}

// commitMessages extracts the message of every commit in input order.
func commitMessages(commits []schema.CommitRecord) []string {
	messages := make([]string, 0, len(commits))
	for _, commit := range commits {
		messages = append(messages, commit.Message)
	}
	return messages
}

// ExecuteReport runs the full pipeline and prints every metric family.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	result, err := BuildReport(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintReport(result, cfg, time.Since(start))
}

// ExecuteContributors prints contributor totals and the average-lines
// views.
func ExecuteContributors(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	commits, _, err := LoadCommits(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	contributors, err := ContributorStats(commits)
	if err != nil {
		return err
	}
	averages := AverageLinesChanged(commits, classify.NewMessageClassifier())
	return outwriter.PrintContributors(contributors, LowestAverages(averages), HighestAverages(averages), cfg, time.Since(start))
}

// ExecuteHeat prints the file heat ranking with the top-by-size and
// top-by-churn views.
func ExecuteHeat(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	commits, fingerprint, err := LoadCommits(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	files := classify.NewExtensionClassifier()
	heat := FileHeat(commits, cfg, files, time.Now())
	storeFileAnalyses(cfg, mgr, fingerprint, FileAnalyses(commits, files))
	return outwriter.PrintFileHeat(heat, TopFilesBySize(commits, files), TopFilesByChurn(commits, files), cfg, time.Since(start))
}

// ExecuteTimeseries prints the time-bucketed and per-commit growth
// curves.
func ExecuteTimeseries(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	commits, _, err := LoadCommits(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	points := TimeSeries(commits, cfg, classify.NewExtensionClassifier())
	return outwriter.PrintTimeSeries(points, LinearSeries(commits), cfg, time.Since(start))
}

// ExecuteAwards prints every commit leaderboard.
func ExecuteAwards(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	commits, _, err := LoadCommits(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	awards := AllAwards(commits, classify.NewMessageClassifier())
	return outwriter.PrintAwards(awards, cfg, time.Since(start))
}

// ExecuteWords prints the commit message word frequency table.
func ExecuteWords(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := gitio.NewLocalGitClient()
	commits, _, err := LoadCommits(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	words, err := ProcessCommitMessages(commitMessages(commits), cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintWords(words, cfg, time.Since(start))
}
