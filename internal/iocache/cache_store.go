package iocache

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/pbaettig/gitpulse/schema"
)

// Table names for the two cache partitions.
const (
	snapshotTable = "commit_snapshots"
	fileTable     = "file_analysis"
)

// currentSchemaVersion is bumped whenever the payload encoding changes.
// Entries with any other version read as misses.
const currentSchemaVersion = 1

// cacheDB wraps the shared database connection with backend dialect
// information and the expiration policy shared by both partitions.
type cacheDB struct {
	db          *sql.DB
	backend     schema.DatabaseBackend
	idleTimeout time.Duration
	maxAge      time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// openCacheDB connects to the configured backend and bootstraps the
// partition tables. This bootstrap is the only cache operation whose
// failure is fatal; every per-entry failure afterwards degrades to a
// cache miss.
func openCacheDB(backend schema.DatabaseBackend, connStr string, idleTimeout, maxAge time.Duration) (*cacheDB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, or postgresql", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	for _, table := range []string{snapshotTable, fileTable} {
		if _, err := db.Exec(createTableQuery(table, backend)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create table %s: %w", table, err)
		}
	}

	return &cacheDB{
		db:          db,
		backend:     backend,
		idleTimeout: idleTimeout,
		maxAge:      maxAge,
		now:         time.Now,
	}, nil
}

// createTableQuery returns the CREATE TABLE query for the given backend.
func createTableQuery(table string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key VARCHAR(64) PRIMARY KEY,
				repo_path TEXT NOT NULL,
				payload TEXT NOT NULL,
				schema_version INT NOT NULL,
				size_bytes BIGINT NOT NULL,
				created_at BIGINT NOT NULL,
				last_accessed BIGINT NOT NULL
			);
		`, table)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				repo_path TEXT NOT NULL,
				payload TEXT NOT NULL,
				schema_version INTEGER NOT NULL,
				size_bytes BIGINT NOT NULL,
				created_at BIGINT NOT NULL,
				last_accessed BIGINT NOT NULL
			);
		`, table)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				cache_key TEXT PRIMARY KEY,
				repo_path TEXT NOT NULL,
				payload TEXT NOT NULL,
				schema_version INTEGER NOT NULL,
				size_bytes INTEGER NOT NULL,
				created_at INTEGER NOT NULL,
				last_accessed INTEGER NOT NULL
			);
		`, table)
	}
}

// rebind rewrites "?" placeholders into "$n" form for PostgreSQL and
// leaves the query untouched for SQLite and MySQL.
func (c *cacheDB) rebind(query string) string {
	if c.backend != schema.PostgreSQLBackend {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

// upsertQuery returns the backend-specific UPSERT for a partition table.
func (c *cacheDB) upsertQuery(table string) string {
	switch c.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, repo_path, payload, schema_version, size_bytes, created_at, last_accessed)
			VALUES (?, ?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE repo_path = new.repo_path, payload = new.payload, schema_version = new.schema_version,
				size_bytes = new.size_bytes, created_at = new.created_at, last_accessed = new.last_accessed`, table)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (cache_key, repo_path, payload, schema_version, size_bytes, created_at, last_accessed)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (cache_key) DO UPDATE SET repo_path = EXCLUDED.repo_path, payload = EXCLUDED.payload,
				schema_version = EXCLUDED.schema_version, size_bytes = EXCLUDED.size_bytes,
				created_at = EXCLUDED.created_at, last_accessed = EXCLUDED.last_accessed`, table)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (cache_key, repo_path, payload, schema_version, size_bytes, created_at, last_accessed)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, table)
	}
}

// Close closes the underlying DB connection.
func (c *cacheDB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
