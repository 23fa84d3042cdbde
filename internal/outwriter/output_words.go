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

// PrintWords outputs the commit message word frequency table.
func PrintWords(entries []schema.WordFrequencyEntry, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWordsCSV(w, entries)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWordsTable(w, entries, cfg, duration)
		}, "Wrote table")
	}
}

func writeWordsCSV(w io.Writer, entries []schema.WordFrequencyEntry) error {
	return writeCSVWithHeader(w, []string{"word", "count", "size"}, func(csvWriter *csv.Writer) error {
		for _, entry := range entries {
			row := []string{entry.Word, strconv.Itoa(entry.Count), strconv.Itoa(entry.Size)}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

func writeWordsTable(w io.Writer, entries []schema.WordFrequencyEntry, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Word", "Count", "Size"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, entry := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			entry.Word,
			strconv.Itoa(entry.Count),
			strconv.Itoa(entry.Size),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Ranked %d words in %v. Cache backend: %s\n", len(entries), duration, cfg.CacheBackend)
	return err
}
