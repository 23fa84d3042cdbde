package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/parquet"
	"github.com/pbaettig/gitpulse/schema"
)

// PrintReport outputs every metric family of a full report.
func PrintReport(result *schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return fmt.Errorf("csv output is not supported for the combined report; use a single-family command")
	case schema.ParquetOut:
		return parquet.WriteReport(result, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, result, cfg, duration)
		}, "Wrote report")
	}
}

func writeReportText(w io.Writer, result *schema.ReportResult, cfg *contract.Config, duration time.Duration) error {
	if _, err := fmt.Fprintln(w, "Contributors:"); err != nil {
		return err
	}
	if err := writeContributorTable(w, result.Contributors, result.LowestAverages, result.HighestAverages, cfg, duration); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Repository growth:"); err != nil {
		return err
	}
	if err := writeTimeSeriesTable(w, result.TimeSeries, result.LinearSeries, cfg, duration); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "File heat:"); err != nil {
		return err
	}
	if err := writeHeatTable(w, result.FileHeat, result.TopBySize, result.TopByChurn, cfg, duration); err != nil {
		return err
	}

	if err := writeAwardsTable(w, result.Awards, cfg, duration); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Commit message words:"); err != nil {
		return err
	}
	return writeWordsTable(w, result.Words, cfg, duration)
}
