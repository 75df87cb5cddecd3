// Package config defines the application configuration and loads it from a
// YAML file and EARNING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/earning-formula/internal/kv"
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for earning-formula.
type Configuration struct {
	Storage  kv.Config      `mapstructure:"storage" yaml:"storage,omitempty"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging,omitempty"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output,omitempty"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server,omitempty"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// ServerConfig defines runtime parameters for the HTTP API.
type ServerConfig struct {
	Address       string `mapstructure:"address" yaml:"address,omitempty"`
	MaxImportSize string `mapstructure:"maxImportSize" yaml:"maxImportSize,omitempty"`
	// ShutdownTimeoutSeconds bounds the graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdownTimeoutSeconds" yaml:"shutdownTimeoutSeconds,omitempty"`

	importSizeBytes int64
}

// DefaultsConfig holds the preferences used before the user picks any.
type DefaultsConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Configuration {
	return &Configuration{
		Storage: kv.Config{Backend: constants.DefaultStorageBackend},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Server: ServerConfig{
			Address:                constants.DefaultServerAddress,
			MaxImportSize:          strconv.FormatInt(constants.DefaultMaxImportSizeBytes, 10),
			ShutdownTimeoutSeconds: constants.DefaultShutdownTimeoutSeconds,
			importSizeBytes:        constants.DefaultMaxImportSizeBytes,
		},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrencyCode},
	}
}

// LoadConfiguration reads the YAML file at configPath, applies EARNING_*
// environment overrides and fills in defaults. A missing file is not an
// error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func setDefaults(v *viper.Viper, d *Configuration) {
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", d.Logging.OutputFile)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.maxImportSize", d.Server.MaxImportSize)
	v.SetDefault("server.shutdownTimeoutSeconds", d.Server.ShutdownTimeoutSeconds)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
}

func (c *Configuration) normalize() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = constants.DefaultStorageBackend
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = constants.DefaultShutdownTimeoutSeconds
	}

	size, err := ParseSize(c.Server.MaxImportSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxImportSizeBytes
	}
	c.Server.importSizeBytes = size
	return nil
}

// ImportSizeBytes returns the configured import size limit in bytes.
func (c ServerConfig) ImportSizeBytes() int64 {
	if c.importSizeBytes <= 0 {
		return constants.DefaultMaxImportSizeBytes
	}
	return c.importSizeBytes
}

// ValidateConfiguration performs general validation of the configuration and
// returns every problem found.
func (c *Configuration) ValidateConfiguration() []string {
	var problems []string

	if err := validation.ValidateStorageBackend(c.Storage.Backend); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validation.ValidateAddress(c.Server.Address); err != nil {
		problems = append(problems, err.Error())
	}

	var codes []string
	for _, currency := range model.Currencies() {
		codes = append(codes, currency.Code)
	}
	if err := validation.ValidateCode("currency", c.Defaults.Currency, codes); err != nil {
		problems = append(problems, err.Error())
	}

	return problems
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxImportSizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
