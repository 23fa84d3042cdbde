package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/internal/iocache"
	"github.com/pbaettig/gitpulse/internal/outwriter"
	"github.com/pbaettig/gitpulse/schema"
)

// cacheDuration parses a viper duration string, falling back to the
// given default when unset.
func cacheDuration(key string, def time.Duration) (time.Duration, error) {
	raw := viper.GetString(key)
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': %w", key, raw, err)
	}
	return d, nil
}

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("cache-backend")))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	idleTimeout, err := cacheDuration("cache-idle-timeout", contract.DefaultCacheIdleTimeout)
	if err != nil {
		return err
	}
	maxAge, err := cacheDuration("cache-max-age", contract.DefaultCacheMaxAge)
	if err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitStores(backend, connStr, idleTimeout, maxAge); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr
	cfg.Output = schema.OutputMode(strings.ToLower(viper.GetString("output")))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheMigrateSetup loads minimal configuration needed for migrate
// operations. It does NOT initialize stores or create tables, so
// migrations can run against a fresh database.
func cacheMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(strings.ToLower(viper.GetString("cache-backend")))
	connStr := viper.GetString("cache-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheMigrateSetupWrapper wraps cacheMigrateSetup for PreRunE.
func cacheMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheMigrateSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by analysis commands. This avoids Git repo validation
// and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the analysis cache (improves performance)",
	Long: `Manage the analysis cache that speeds up repeated runs.

Gitpulse caches whole commit-history snapshots and per-file analysis
results, keyed by a fingerprint of the repository's state. As long as
HEAD does not move, repeated runs skip Git entirely.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show entry counts, sizes and age bounds
  clear   - Remove all cached data
  cleanup - Remove only expired entries
  migrate - Run schema migrations

Examples:
  # Check cache status
  gitpulse cache status

  # Clear cache after a history rewrite
  gitpulse cache clear`,
}

// cacheStatusCmd shows cache statistics.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and entry age bounds",
	Long: `Show detailed information about the analysis cache.

Displays:
- Backend type
- Entry counts per partition (snapshots, file analyses)
- Total payload size
- Oldest and newest entry timestamps

Examples:
  # Check cache status
  gitpulse cache status

  # Check a MySQL-backed cache
  GITPULSE_CACHE_BACKEND=mysql GITPULSE_CACHE_DB_CONNECT="..." gitpulse cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		admin := iocache.Manager.GetAdmin()
		if admin == nil {
			fmt.Println("Caching is disabled.")
			return
		}
		stats, err := admin.Stats()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		if err := outwriter.PrintCacheStats(stats, cfg); err != nil {
			contract.LogFatal("Failed to print cache status", err)
		}
	},
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached analysis data",
	Long: `Delete all cached snapshots and file analyses from the configured backend.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Testing performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Empties the cache tables

Examples:
  # Clear the SQLite cache (default)
  gitpulse cache clear

  # Clear a MySQL cache
  GITPULSE_CACHE_BACKEND=mysql GITPULSE_CACHE_DB_CONNECT="..." gitpulse cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		switch cfg.CacheBackend {
		case schema.NoneBackend:
			fmt.Println("Caching is disabled; nothing to clear.")
			return
		case schema.SQLiteBackend:
			iocache.CloseStores()
			dbFilePath := cfg.CacheDBConnect
			if dbFilePath == "" {
				dbFilePath = contract.GetCacheDBFilePath()
			}
			if err := iocache.ClearCacheFile(dbFilePath); err != nil {
				contract.LogFatal("Failed to clear cache", err)
			}
		default:
			admin := iocache.Manager.GetAdmin()
			if admin == nil {
				contract.LogFatal("Failed to clear cache", fmt.Errorf("cache admin is unavailable"))
			}
			if err := admin.Clear(); err != nil {
				contract.LogFatal("Failed to clear cache", err)
			}
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheCleanupCmd removes only expired entries.
var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove expired cache entries",
	Long: `Delete cache entries that have passed their idle timeout or max age.

Unlike clear, cleanup keeps every entry that is still fresh. Run it
periodically on long-lived server backends to bound table growth.

Examples:
  # Remove expired entries
  gitpulse cache cleanup`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		admin := iocache.Manager.GetAdmin()
		if admin == nil {
			fmt.Println("Caching is disabled; nothing to clean up.")
			return
		}
		removed, err := admin.CleanupExpired()
		if err != nil {
			contract.LogFatal("Failed to clean up cache", err)
		}
		fmt.Printf("Removed %d expired cache entries.\n", removed)
	},
}

// cacheMigrateCmd runs database migrations for the cache store.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the analysis cache.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gitpulse cache migrate

  # Migrate to specific version
  gitpulse cache migrate --target-version 1

  # Rollback to initial state
  gitpulse cache migrate --target-version 0`,
	PreRunE: cacheMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateCache(cfg.CacheBackend, cfg.CacheDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
