package core

import (
	"math"
	"sort"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// topFilesLimit caps the top-by-size and top-by-churn views.
const topFilesLimit = 20

// fileFold is the raw per-path accumulator shared by the heat and
// top-files views. netLines is unfloored here and may be negative.
type fileFold struct {
	path         string
	commits      int
	netLines     int
	churn        int
	lastModified time.Time
	category     schema.FileCategory
}

// accumulateFiles folds every commit into one accumulator per file path,
// in first-appearance order. A rename carries the accumulated history of
// the old path forward under the new one.
func accumulateFiles(commits []schema.CommitRecord, classifier contract.FileClassifier) []*fileFold {
	byPath := make(map[string]*fileFold)
	var order []*fileFold

	for _, commit := range commits {
		for _, change := range commit.Files {
			fold, ok := byPath[change.Path]
			if !ok && change.RenamedFrom != "" {
				if prev, renamed := byPath[change.RenamedFrom]; renamed {
					delete(byPath, change.RenamedFrom)
					prev.path = change.Path
					byPath[change.Path] = prev
					fold, ok = prev, true
				}
			}
			if !ok {
				category := change.Category
				if category == "" {
					category = classifier.Classify(change.Path)
				}
				fold = &fileFold{path: change.Path, category: category}
				byPath[change.Path] = fold
				order = append(order, fold)
			}
			fold.commits++
			fold.netLines += change.LinesAdded - change.LinesDeleted
			fold.churn += change.LinesAdded + change.LinesDeleted
			if commit.Timestamp.After(fold.lastModified) {
				fold.lastModified = commit.Timestamp
			}
		}
	}
	return order
}

// FileHeat ranks every touched file by a weighted combination of commit
// frequency and recency: commits * frequencyWeight plus an exponential
// recency term decaying over cfg.HeatDecayDays. The result is sorted
// descending by score and truncated to cfg.MaxFilesDisplayed. NetLines
// is floored to 1 so purely deleted-from files stay visible in
// size-oriented views; Churn stays unfloored.
func FileHeat(commits []schema.CommitRecord, cfg *contract.Config, classifier contract.FileClassifier, now time.Time) []schema.FileHeatRecord {
	folds := accumulateFiles(commits, classifier)

	records := make([]schema.FileHeatRecord, 0, len(folds))
	for _, fold := range folds {
		days := now.Sub(fold.lastModified).Hours() / 24
		if days < 0 {
			days = 0
		}
		score := float64(fold.commits)*cfg.HeatFrequencyWeight +
			math.Exp(-days/cfg.HeatDecayDays)*cfg.HeatRecencyWeight

		netLines := fold.netLines
		if netLines < 1 {
			netLines = 1
		}
		records = append(records, schema.FileHeatRecord{
			Path:         fold.path,
			Commits:      fold.commits,
			LastModified: fold.lastModified,
			NetLines:     netLines,
			Churn:        fold.churn,
			Category:     fold.category,
			Score:        score,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if len(records) > cfg.MaxFilesDisplayed {
		records = records[:cfg.MaxFilesDisplayed]
	}
	return records
}

// TopFilesBySize ranks files by raw net line delta, descending. Files
// with a non-positive net delta are excluded; a file that only ever
// shrank has no size to rank.
func TopFilesBySize(commits []schema.CommitRecord, classifier contract.FileClassifier) []schema.FileRank {
	var ranks []schema.FileRank
	for _, fold := range accumulateFiles(commits, classifier) {
		if fold.netLines <= 0 {
			continue
		}
		ranks = append(ranks, schema.FileRank{Path: fold.path, Value: int64(fold.netLines)})
	}
	return capRanks(ranks)
}

// TopFilesByChurn ranks files by total rewrite activity, descending.
// Sign-agnostic, so heavily rewritten files rank high even when their
// net size barely moved.
func TopFilesByChurn(commits []schema.CommitRecord, classifier contract.FileClassifier) []schema.FileRank {
	var ranks []schema.FileRank
	for _, fold := range accumulateFiles(commits, classifier) {
		ranks = append(ranks, schema.FileRank{Path: fold.path, Value: int64(fold.churn)})
	}
	return capRanks(ranks)
}

func capRanks(ranks []schema.FileRank) []schema.FileRank {
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Value > ranks[j].Value
	})
	if len(ranks) > topFilesLimit {
		ranks = ranks[:topFilesLimit]
	}
	return ranks
}

// FileAnalyses converts the per-path folds into cacheable analysis
// records for the per-file cache partition. NetLines is kept raw here;
// flooring is a display concern.
func FileAnalyses(commits []schema.CommitRecord, classifier contract.FileClassifier) []schema.FileAnalysis {
	folds := accumulateFiles(commits, classifier)
	analyses := make([]schema.FileAnalysis, 0, len(folds))
	for _, fold := range folds {
		analyses = append(analyses, schema.FileAnalysis{
			Path:         fold.path,
			Commits:      fold.commits,
			NetLines:     fold.netLines,
			Churn:        fold.churn,
			LastModified: fold.lastModified,
			Category:     fold.category,
		})
	}
	return analyses
}
