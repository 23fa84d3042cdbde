package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// PrintCacheStats outputs the cache status summary.
func PrintCacheStats(stats schema.CacheStats, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, stats)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Cache backend: %s\n", stats.Backend); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Entries: %d (%d bytes)\n", stats.Entries, stats.TotalSizeBytes); err != nil {
			return err
		}
		if stats.Oldest == nil || stats.Newest == nil {
			_, err := fmt.Fprintln(w, "Cache is empty")
			return err
		}
		if _, err := fmt.Fprintf(w, "Oldest entry: %s\n", stats.Oldest.UTC().Format(time.RFC3339)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Newest entry: %s\n", stats.Newest.UTC().Format(time.RFC3339))
		return err
	}, "Wrote cache status")
}
