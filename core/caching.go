package core

import (
	"context"
	"fmt"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/gitio"
	"github.com/pbaettig/gitpulse/schema"
)

// LoadCommits returns the full commit history for cfg.RepoPath, served
// from the snapshot cache when the repository state fingerprint still
// matches and collected fresh otherwise. A broken cache degrades to
// direct collection; a broken repository (strict head lookup failure) is
// a hard stop.
func LoadCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient, cache contract.CacheManager) ([]schema.CommitRecord, string, error) {
	head, err := client.HeadCommit(ctx, cfg.RepoPath)
	if err != nil {
		return nil, "", fmt.Errorf("cannot resolve repository head: %w", err)
	}
	fingerprint := gitio.StateFingerprint(ctx, client, cfg.RepoPath, head)

	var store contract.SnapshotStore
	if cache != nil {
		store = cache.GetSnapshotStore()
	}
	if store != nil {
		if commits, ok := store.Get(cfg.RepoPath, fingerprint); ok {
			return commits, fingerprint, nil
		}
	}

	commits, err := client.CollectCommits(ctx, cfg.RepoPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to collect commit history: %w", err)
	}

	if store != nil {
		if err := store.Set(cfg.RepoPath, fingerprint, commits); err != nil {
			contract.LogWarn("failed to cache commit snapshot", err)
		}
	}
	return commits, fingerprint, nil
}

// storeFileAnalyses writes the per-file folds through the file cache
// partition. Write failures degrade to a warning; the analyses were just
// computed and remain usable.
func storeFileAnalyses(cfg *contract.Config, cache contract.CacheManager, fingerprint string, analyses []schema.FileAnalysis) {
	if cache == nil {
		return
	}
	store := cache.GetFileStore()
	if store == nil {
		return
	}
	for _, analysis := range analyses {
		if err := store.Set(cfg.RepoPath, fingerprint, analysis); err != nil {
			contract.LogWarn(fmt.Sprintf("failed to cache analysis for %s", analysis.Path), err)
			return
		}
	}
}
