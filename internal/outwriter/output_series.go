package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// PrintTimeSeries outputs the time-bucketed growth curve and the
// per-commit cumulative series.
func PrintTimeSeries(points []schema.TimeSeriesPoint, linear []schema.LinearSeriesPoint, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"timeSeries":   points,
				"linearSeries": linear,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeSeriesCSV(w, points)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeSeriesTable(w, points, linear, cfg, duration)
		}, "Wrote table")
	}
}

func writeTimeSeriesCSV(w io.Writer, points []schema.TimeSeriesPoint) error {
	header := []string{"bucket", "category", "lines_added", "lines_deleted", "cumulative_lines", "cumulative_bytes"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, point := range points {
			bucket := point.Bucket.UTC().Format(time.RFC3339)
			for _, category := range schema.AllFileCategories {
				totals := point.Categories[category]
				row := []string{
					bucket,
					string(category),
					strconv.Itoa(totals.LinesAdded),
					strconv.Itoa(totals.LinesDeleted),
					strconv.Itoa(totals.CumulativeLines),
					strconv.FormatInt(totals.CumulativeBytes, 10),
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
			total := []string{
				bucket,
				"total",
				strconv.Itoa(point.Total.LinesAdded),
				strconv.Itoa(point.Total.LinesDeleted),
				strconv.Itoa(point.Total.CumulativeLines),
				strconv.FormatInt(point.Total.CumulativeBytes, 10),
			}
			if err := csvWriter.Write(total); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeTimeSeriesTable(w io.Writer, points []schema.TimeSeriesPoint, linear []schema.LinearSeriesPoint, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Bucket", "Added", "Deleted", "Cum Lines", "Cum Bytes"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, point := range points {
		data = append(data, []string{
			point.Bucket.UTC().Format("2006-01-02 15:04"),
			strconv.Itoa(point.Total.LinesAdded),
			strconv.Itoa(point.Total.LinesDeleted),
			strconv.Itoa(point.Total.CumulativeLines),
			strconv.FormatInt(point.Total.CumulativeBytes, 10),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(linear) > 0 {
		final := linear[len(linear)-1]
		if _, err := fmt.Fprintf(w, "Per-commit series: %d commits, final cumulative %d lines / %d bytes\n",
			len(linear)-1, final.CumulativeLines, final.CumulativeBytes); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Rendered %d buckets in %v. Cache backend: %s\n", len(points), duration, cfg.CacheBackend)
	return err
}
