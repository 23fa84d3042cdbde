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

// PrintContributors outputs contributor totals and the average-lines
// views, dispatching on the configured output format.
func PrintContributors(stats []schema.ContributorStats, lowest, highest []schema.ContributorAverage, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"contributors":    stats,
				"lowestAverages":  lowest,
				"highestAverages": highest,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorCSV(w, stats)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorTable(w, stats, lowest, highest, cfg, duration)
		}, "Wrote table")
	}
}

func writeContributorCSV(w io.Writer, stats []schema.ContributorStats) error {
	return writeCSVWithHeader(w, []string{"name", "commits", "lines_added", "lines_deleted"}, func(csvWriter *csv.Writer) error {
		for _, s := range stats {
			row := []string{s.Name, strconv.Itoa(s.Commits), strconv.Itoa(s.LinesAdded), strconv.Itoa(s.LinesDeleted)}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeContributorTable(w io.Writer, stats []schema.ContributorStats, lowest, highest []schema.ContributorAverage, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Commits", "Added", "Deleted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range stats {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Name,
			strconv.Itoa(s.Commits),
			strconv.Itoa(s.LinesAdded),
			strconv.Itoa(s.LinesDeleted),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(highest) > 0 || len(lowest) > 0 {
		if _, err := fmt.Fprintln(w, "Average lines changed per commit (min 5 qualifying commits):"); err != nil {
			return err
		}
		if err := writeAveragesTable(w, "Highest", highest, fmtFloat); err != nil {
			return err
		}
		if err := writeAveragesTable(w, "Lowest", lowest, fmtFloat); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Analyzed %d contributors in %v. Cache backend: %s\n", len(stats), duration, cfg.CacheBackend)
	return err
}

func writeAveragesTable(w io.Writer, title string, averages []schema.ContributorAverage, fmtFloat func(float64) string) error {
	if len(averages) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Commits", "Avg Lines"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, a := range averages {
		data = append(data, []string{a.Name, strconv.Itoa(a.Commits), fmtFloat(a.AverageLines)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
