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

// maxAwardMessageWidth keeps leaderboards readable on one line.
const maxAwardMessageWidth = 50

// PrintAwards outputs every commit leaderboard.
func PrintAwards(awards map[schema.AwardKind][]schema.CommitAward, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, awards)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAwardsCSV(w, awards)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAwardsTable(w, awards, cfg, duration)
		}, "Wrote table")
	}
}

func writeAwardsCSV(w io.Writer, awards map[schema.AwardKind][]schema.CommitAward) error {
	header := []string{"kind", "rank", "hash", "author", "date", "message", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, kind := range schema.AllAwardKinds {
			for i, award := range awards[kind] {
				row := []string{
					string(kind),
					strconv.Itoa(i + 1),
					award.Hash,
					award.Author,
					award.Date.UTC().Format(time.RFC3339),
					award.Message,
					strconv.FormatInt(award.Value, 10),
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}

func writeAwardsTable(w io.Writer, awards map[schema.AwardKind][]schema.CommitAward, cfg *contract.Config, duration time.Duration) error {
	for _, kind := range schema.AllAwardKinds {
		entries := awards[kind]
		if len(entries) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "Top commits by %s:\n", kind); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Rank", "Hash", "Author", "Date", "Message", "Value"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for i, award := range entries {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				shortHash(award.Hash),
				award.Author,
				award.Date.UTC().Format("2006-01-02"),
				contract.TruncateMessage(award.Message, maxAwardMessageWidth),
				strconv.FormatInt(award.Value, 10),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Computed %d leaderboards in %v. Cache backend: %s\n", len(awards), duration, cfg.CacheBackend)
	return err
}

// shortHash abbreviates a commit hash for table display.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
