package core

import (
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// bucketStep returns the bucket width for a granularity.
func bucketStep(granularity schema.SeriesGranularity) time.Duration {
	if granularity == schema.HourlyGranularity {
		return time.Hour
	}
	return 24 * time.Hour
}

// ChooseGranularity picks hourly buckets when the repository span is
// strictly under the configured threshold and daily buckets otherwise,
// so young repositories still produce a meaningful curve while old ones
// avoid excessive bucket counts.
func ChooseGranularity(commits []schema.CommitRecord, thresholdHours int) schema.SeriesGranularity {
	if len(commits) == 0 {
		return schema.DailyGranularity
	}
	earliest, latest := commits[0].Timestamp, commits[0].Timestamp
	for _, commit := range commits[1:] {
		if commit.Timestamp.Before(earliest) {
			earliest = commit.Timestamp
		}
		if commit.Timestamp.After(latest) {
			latest = commit.Timestamp
		}
	}
	if latest.Sub(earliest) < time.Duration(thresholdHours)*time.Hour {
		return schema.HourlyGranularity
	}
	return schema.DailyGranularity
}

// bucketDeltas accumulates the per-category line and byte deltas of the
// commits falling into one bucket.
type bucketDeltas struct {
	linesAdded   map[schema.FileCategory]int
	linesDeleted map[schema.FileCategory]int
	bytesNet     map[schema.FileCategory]int64
}

func newBucketDeltas() *bucketDeltas {
	return &bucketDeltas{
		linesAdded:   make(map[schema.FileCategory]int),
		linesDeleted: make(map[schema.FileCategory]int),
		bytesNet:     make(map[schema.FileCategory]int64),
	}
}

// TimeSeries builds the time-bucketed growth curve. Buckets are UTC
// truncated, emitted ascending with gap buckets present as zero-delta
// points, and preceded by a synthetic zero point one bucket width before
// the first real bucket. Per-category cumulative values sum to the total
// cumulative value at every point.
func TimeSeries(commits []schema.CommitRecord, cfg *contract.Config, classifier contract.FileClassifier) []schema.TimeSeriesPoint {
	if len(commits) == 0 {
		return nil
	}

	granularity := ChooseGranularity(commits, cfg.HourlyThresholdHours)
	step := bucketStep(granularity)

	buckets := make(map[time.Time]*bucketDeltas)
	first := commits[0].Timestamp.UTC().Truncate(step)
	last := first
	for _, commit := range commits {
		bucket := commit.Timestamp.UTC().Truncate(step)
		if bucket.Before(first) {
			first = bucket
		}
		if bucket.After(last) {
			last = bucket
		}
		deltas, ok := buckets[bucket]
		if !ok {
			deltas = newBucketDeltas()
			buckets[bucket] = deltas
		}
		accumulateCommit(deltas, commit, classifier)
	}

	cumLines := make(map[schema.FileCategory]int)
	cumBytes := make(map[schema.FileCategory]int64)

	var points []schema.TimeSeriesPoint
	// The synthetic baseline sits one bucket before the first commit.
	for bucket := first.Add(-step); !bucket.After(last); bucket = bucket.Add(step) {
		deltas := buckets[bucket]

		point := schema.TimeSeriesPoint{
			Bucket:     bucket,
			Categories: make(map[schema.FileCategory]schema.SeriesTotals, len(schema.AllFileCategories)),
		}
		for _, category := range schema.AllFileCategories {
			totals := schema.SeriesTotals{}
			if deltas != nil {
				totals.LinesAdded = deltas.linesAdded[category]
				totals.LinesDeleted = deltas.linesDeleted[category]
				cumLines[category] += totals.LinesAdded - totals.LinesDeleted
				cumBytes[category] += deltas.bytesNet[category]
			}
			totals.CumulativeLines = cumLines[category]
			totals.CumulativeBytes = cumBytes[category]
			point.Categories[category] = totals

			point.Total.LinesAdded += totals.LinesAdded
			point.Total.LinesDeleted += totals.LinesDeleted
			point.Total.CumulativeLines += totals.CumulativeLines
			point.Total.CumulativeBytes += totals.CumulativeBytes
		}
		points = append(points, point)
	}
	return points
}

// accumulateCommit folds one commit into a bucket. File-level deltas are
// attributed to their category; any remainder between the commit totals
// and the file sums lands in the "other" category so bucket totals stay
// consistent with the commit-level totals.
func accumulateCommit(deltas *bucketDeltas, commit schema.CommitRecord, classifier contract.FileClassifier) {
	fileAdded, fileDeleted := 0, 0
	var fileBytes int64

	for _, change := range commit.Files {
		category := change.Category
		if category == "" {
			category = classifier.Classify(change.Path)
		}
		deltas.linesAdded[category] += change.LinesAdded
		deltas.linesDeleted[category] += change.LinesDeleted
		deltas.bytesNet[category] += change.BytesAdded - change.BytesDeleted

		fileAdded += change.LinesAdded
		fileDeleted += change.LinesDeleted
		fileBytes += change.BytesAdded - change.BytesDeleted
	}

	deltas.linesAdded[schema.CategoryOther] += commit.LinesAdded - fileAdded
	deltas.linesDeleted[schema.CategoryOther] += commit.LinesDeleted - fileDeleted
	deltas.bytesNet[schema.CategoryOther] += (commit.BytesAdded - commit.BytesDeleted) - fileBytes
}
