package core

import (
	"sort"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// minQualifyingCommits is the statistical-significance floor for the
// average-lines view. Contributors below it are silently excluded.
const minQualifyingCommits = 5

// topAveragesLimit caps the lowest/highest average views.
const topAveragesLimit = 5

// ContributorStats groups commits by author name and folds commit count
// and line totals. The result is sorted descending by commit count; ties
// keep first-appearance order. An empty input is a caller error, because
// "no commits" must stay distinguishable from "not yet computed".
func ContributorStats(commits []schema.CommitRecord) ([]schema.ContributorStats, error) {
	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	byName := make(map[string]int) // name -> index into stats
	stats := make([]schema.ContributorStats, 0)

	for _, commit := range commits {
		idx, ok := byName[commit.Author]
		if !ok {
			idx = len(stats)
			byName[commit.Author] = idx
			stats = append(stats, schema.ContributorStats{Name: commit.Author})
		}
		stats[idx].Commits++
		stats[idx].LinesAdded += commit.LinesAdded
		stats[idx].LinesDeleted += commit.LinesDeleted
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Commits > stats[j].Commits
	})
	return stats, nil
}

// AverageLinesChanged computes the average lines changed per commit for
// every contributor with at least minQualifyingCommits qualifying
// commits. Merge and automated commits never qualify. The result keeps
// first-appearance order; use LowestAverages or HighestAverages for the
// ranked views.
func AverageLinesChanged(commits []schema.CommitRecord, classifier contract.CommitClassifier) []schema.ContributorAverage {
	type fold struct {
		commits    int
		totalLines int
	}

	byName := make(map[string]*fold)
	var order []string

	for _, commit := range commits {
		if classifier.IsMerge(commit.Message) || classifier.IsAutomated(commit.Message) {
			continue
		}
		f, ok := byName[commit.Author]
		if !ok {
			f = &fold{}
			byName[commit.Author] = f
			order = append(order, commit.Author)
		}
		f.commits++
		f.totalLines += commit.LinesAdded + commit.LinesDeleted
	}

	var averages []schema.ContributorAverage
	for _, name := range order {
		f := byName[name]
		if f.commits < minQualifyingCommits {
			continue
		}
		averages = append(averages, schema.ContributorAverage{
			Name:         name,
			Commits:      f.commits,
			AverageLines: float64(f.totalLines) / float64(f.commits),
		})
	}
	return averages
}

// LowestAverages returns up to topAveragesLimit contributors with the
// smallest average, ascending.
func LowestAverages(averages []schema.ContributorAverage) []schema.ContributorAverage {
	ranked := make([]schema.ContributorAverage, len(averages))
	copy(ranked, averages)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageLines < ranked[j].AverageLines
	})
	if len(ranked) > topAveragesLimit {
		ranked = ranked[:topAveragesLimit]
	}
	return ranked
}

// HighestAverages returns up to topAveragesLimit contributors with the
// largest average, descending.
func HighestAverages(averages []schema.ContributorAverage) []schema.ContributorAverage {
	ranked := make([]schema.ContributorAverage, len(averages))
	copy(ranked, averages)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageLines > ranked[j].AverageLines
	})
	if len(ranked) > topAveragesLimit {
		ranked = ranked[:topAveragesLimit]
	}
	return ranked
}
