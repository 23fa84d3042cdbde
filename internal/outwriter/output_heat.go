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

// PrintFileHeat outputs the heat ranking plus the top-by-size and
// top-by-churn views.
func PrintFileHeat(records []schema.FileHeatRecord, topSize, topChurn []schema.FileRank, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"fileHeat":   records,
				"topBySize":  topSize,
				"topByChurn": topChurn,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatCSV(w, records, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatTable(w, records, topSize, topChurn, cfg, duration)
		}, "Wrote table")
	}
}

func writeHeatCSV(w io.Writer, records []schema.FileHeatRecord, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	header := []string{"path", "commits", "net_lines", "churn", "category", "last_modified", "score"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range records {
			row := []string{
				r.Path,
				strconv.Itoa(r.Commits),
				strconv.Itoa(r.NetLines),
				strconv.Itoa(r.Churn),
				string(r.Category),
				r.LastModified.UTC().Format(time.RFC3339),
				fmtFloat(r.Score),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeHeatTable(w io.Writer, records []schema.FileHeatRecord, topSize, topChurn []schema.FileRank, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	pathWidth := getMaxTablePathWidth()

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Path", "Commits", "Net", "Churn", "Category", "Score", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainLabel
	if cfg.UseColor {
		label = contract.GetColorLabel
	}

	var data [][]string
	for i, r := range records {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(r.Path, pathWidth),
			strconv.Itoa(r.Commits),
			strconv.Itoa(r.NetLines),
			strconv.Itoa(r.Churn),
			string(r.Category),
			fmtFloat(r.Score),
			label(r.Score),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeRankTable(w, "Top files by size (net lines)", topSize, pathWidth); err != nil {
		return err
	}
	if err := writeRankTable(w, "Top files by churn", topChurn, pathWidth); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing top %d files in %v. Cache backend: %s\n", len(records), duration, cfg.CacheBackend)
	return err
}

func writeRankTable(w io.Writer, title string, ranks []schema.FileRank, pathWidth int) error {
	if len(ranks) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Path", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range ranks {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(r.Path, pathWidth),
			strconv.FormatInt(r.Value, 10),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
