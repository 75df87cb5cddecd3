// Package constants provides shared constants for the earning-formula application.
package constants

// Work schedule constants
const (
	// WeeksPerMonth is the fixed average number of weeks in a month used for
	// every weekly/monthly conversion.
	WeeksPerMonth = 4.3

	// DaysPerWeek is the number of days in a week
	DaysPerWeek = 7

	// WeekdaysPerWeek is the number of working days (Monday to Friday)
	WeekdaysPerWeek = 5

	// WeekendDaysPerWeek is the number of weekend days (Saturday and Sunday)
	WeekendDaysPerWeek = 2

	// MaxHoursPerDay is the ceiling for a single day's hours
	MaxHoursPerDay = 24.0

	// MaxHoursPerWeek is 24 hours * 7 days
	MaxHoursPerWeek = MaxHoursPerDay * DaysPerWeek

	// MaxHoursPerMonth is 31 days * 24 hours
	MaxHoursPerMonth = 31 * MaxHoursPerDay
)

// Numeric constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// HoursTolerance is the tolerance for comparing derived hour values
	HoursTolerance = 1e-9

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Persistence keys and sentinels
const (
	// KeyConfigurations holds the JSON array of saved configurations
	KeyConfigurations = "configurations"

	// KeyLastConfigurationID holds the id (or CurrentConfigurationID) of the
	// configuration to reload at startup
	KeyLastConfigurationID = "last_configuration_id"

	// KeyCurrentConfiguration holds the unsaved working configuration
	KeyCurrentConfiguration = "current_configuration"

	// KeyCurrency holds the selected currency code
	KeyCurrency = "currency"

	// KeyLanguage holds the selected language code
	KeyLanguage = "language"

	// CurrentConfigurationID is the persisted id of the unsaved working configuration
	CurrentConfigurationID = "current"

	// SampleConfigurationID is the id of the generated demo configuration
	SampleConfigurationID = "sample"
)

// Preference defaults
const (
	// DefaultCurrencyCode is used when no currency was ever selected
	DefaultCurrencyCode = "RUB"

	// DefaultLanguageCode is used when neither a saved nor a host language matches
	DefaultLanguageCode = "ru"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Storage backend constants
const (
	// StorageBackendMemory keeps everything in process memory
	StorageBackendMemory = "memory"

	// StorageBackendFile stores all keys in a single JSON file
	StorageBackendFile = "file"

	// StorageBackendSQLite stores all keys in a SQLite table
	StorageBackendSQLite = "sqlite"

	// DefaultStorageBackend is the backend used when none is configured
	DefaultStorageBackend = StorageBackendFile

	// DefaultDataDir is the directory below the user's home holding data files
	DefaultDataDir = ".earning-formula"

	// DefaultFileStorageName is the file name of the JSON file backend
	DefaultFileStorageName = "store.json"

	// DefaultSQLiteStorageName is the file name of the SQLite backend
	DefaultSQLiteStorageName = "store.db"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "earning-formula.yaml"

	// EnvPrefix is the prefix of environment overrides (EARNING_STORAGE_BACKEND, ...)
	EnvPrefix = "EARNING"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxImportSizeBytes is the maximum accepted import payload (1 MB)
	DefaultMaxImportSizeBytes int64 = 1024 * 1024

	// DefaultShutdownTimeoutSeconds bounds the graceful shutdown of the API server
	DefaultShutdownTimeoutSeconds = 10
)

// OutputFormats returns every supported output format.
func OutputFormats() []string {
	return []string{OutputFormatPretty, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML}
}

// StorageBackends returns every supported storage backend.
func StorageBackends() []string {
	return []string{StorageBackendMemory, StorageBackendFile, StorageBackendSQLite}
}
