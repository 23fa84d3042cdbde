package schema

// Custom string types for type safety.
type (
	// FileCategory classifies a file path into a reporting category.
	FileCategory string

	// AwardKind selects the scalar used for a commit leaderboard.
	AwardKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// SeriesGranularity is the bucket width of a time series.
	SeriesGranularity string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All file categories supported by the classifier.
const (
	CategoryApplication   FileCategory = "application"
	CategoryTest          FileCategory = "test"
	CategoryBuild         FileCategory = "build"
	CategoryDocumentation FileCategory = "documentation"
	CategoryOther         FileCategory = "other"
)

// All award kinds supported.
const (
	AwardFilesTouched AwardKind = "files-touched"
	AwardBytesAdded   AwardKind = "bytes-added"
	AwardBytesRemoved AwardKind = "bytes-removed"
	AwardLinesAdded   AwardKind = "lines-added"
	AwardLinesRemoved AwardKind = "lines-removed"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All series granularities supported.
const (
	HourlyGranularity SeriesGranularity = "hourly"
	DailyGranularity  SeriesGranularity = "daily"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllFileCategories lists every category in stable reporting order.
var AllFileCategories = []FileCategory{
	CategoryApplication,
	CategoryTest,
	CategoryBuild,
	CategoryDocumentation,
	CategoryOther,
}

// AllAwardKinds lists every award kind in stable reporting order.
var AllAwardKinds = []AwardKind{
	AwardFilesTouched,
	AwardBytesAdded,
	AwardBytesRemoved,
	AwardLinesAdded,
	AwardLinesRemoved,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
