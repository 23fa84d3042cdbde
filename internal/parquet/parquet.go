// Package parquet exports derived metrics to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// FileHeatRow is the Parquet row shape for one file heat record.
type FileHeatRow struct {
	FilePath     string    `parquet:"file_path,snappy"`
	Commits      int32     `parquet:"commits,snappy"`
	NetLines     int32     `parquet:"net_lines,snappy"`
	Churn        int32     `parquet:"churn,snappy"`
	Category     string    `parquet:"category,snappy"`
	LastModified time.Time `parquet:"last_modified,snappy"`
	Score        float64   `parquet:"score,snappy"`
}

// ContributorRow is the Parquet row shape for one contributor.
type ContributorRow struct {
	Name         string `parquet:"name,snappy"`
	Commits      int32  `parquet:"commits,snappy"`
	LinesAdded   int32  `parquet:"lines_added,snappy"`
	LinesDeleted int32  `parquet:"lines_deleted,snappy"`
}

// ConvertFileHeatRecords maps heat records to Parquet rows.
func ConvertFileHeatRecords(records []schema.FileHeatRecord) []FileHeatRow {
	rows := make([]FileHeatRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, FileHeatRow{
			FilePath:     r.Path,
			Commits:      int32(r.Commits),
			NetLines:     int32(r.NetLines),
			Churn:        int32(r.Churn),
			Category:     string(r.Category),
			LastModified: r.LastModified,
			Score:        r.Score,
		})
	}
	return rows
}

// ConvertContributorStats maps contributor stats to Parquet rows.
func ConvertContributorStats(stats []schema.ContributorStats) []ContributorRow {
	rows := make([]ContributorRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, ContributorRow{
			Name:         s.Name,
			Commits:      int32(s.Commits),
			LinesAdded:   int32(s.LinesAdded),
			LinesDeleted: int32(s.LinesDeleted),
		})
	}
	return rows
}

// writeParquet writes rows to a Parquet file using struct schema
// inference.
func writeParquet[T any](rows []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteReport exports the file heat and contributor families of a report
// to a pair of Parquet files derived from cfg.OutputFile.
func WriteReport(result *schema.ReportResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}

	heatFile := cfg.OutputFile + ".file_heat.parquet"
	if err := writeParquet(ConvertFileHeatRecords(result.FileHeat), heatFile); err != nil {
		return fmt.Errorf("failed to write file heat: %w", err)
	}
	fmt.Printf("Exported %d file heat records to: %s\n", len(result.FileHeat), heatFile)

	contributorFile := cfg.OutputFile + ".contributors.parquet"
	if err := writeParquet(ConvertContributorStats(result.Contributors), contributorFile); err != nil {
		return fmt.Errorf("failed to write contributors: %w", err)
	}
	fmt.Printf("Exported %d contributors to: %s\n", len(result.Contributors), contributorFile)

	return nil
}
