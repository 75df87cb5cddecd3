package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/earning-formula/pkg/constants"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.DefaultConfigFile)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigurationDefaults(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
	}{
		{"No path", ""},
		{"Missing file", filepath.Join(t.TempDir(), "missing.yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfiguration(tt.configPath)
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			if cfg.Storage.Backend != constants.DefaultStorageBackend {
				t.Errorf("expected backend %q, got %q", constants.DefaultStorageBackend, cfg.Storage.Backend)
			}
			if cfg.Output.Format != constants.OutputFormatPretty {
				t.Errorf("expected pretty output, got %q", cfg.Output.Format)
			}
			if cfg.Server.Address != constants.DefaultServerAddress {
				t.Errorf("expected address %q, got %q", constants.DefaultServerAddress, cfg.Server.Address)
			}
			if cfg.Server.ImportSizeBytes() != constants.DefaultMaxImportSizeBytes {
				t.Errorf("expected default import size, got %d", cfg.Server.ImportSizeBytes())
			}
			if cfg.Defaults.Currency != constants.DefaultCurrencyCode {
				t.Errorf("expected default currency, got %q", cfg.Defaults.Currency)
			}
			if problems := cfg.ValidateConfiguration(); len(problems) != 0 {
				t.Errorf("defaults should validate, got %v", problems)
			}
		})
	}
}

func TestLoadConfigurationFromFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: SQLite
  path: /tmp/earning.db
logging:
  level: debug
  format: console
  outputFile: /tmp/earning.log
output:
  format: json
server:
  address: 127.0.0.1:9090
  maxImportSize: 256K
  shutdownTimeoutSeconds: 3
defaults:
  currency: USD
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Storage.Backend != constants.StorageBackendSQLite || cfg.Storage.Path != "/tmp/earning.db" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" || cfg.Logging.OutputFile != "/tmp/earning.log" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Output.Format != constants.OutputFormatJSON {
		t.Errorf("expected json output, got %q", cfg.Output.Format)
	}
	if cfg.Server.Address != "127.0.0.1:9090" || cfg.Server.ShutdownTimeoutSeconds != 3 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.ImportSizeBytes() != 256*1024 {
		t.Errorf("expected 256K import size, got %d", cfg.Server.ImportSizeBytes())
	}
	if cfg.Defaults.Currency != "USD" {
		t.Errorf("expected USD, got %q", cfg.Defaults.Currency)
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: file\n")
	t.Setenv("EARNING_STORAGE_BACKEND", "memory")
	t.Setenv("EARNING_OUTPUT_FORMAT", "yaml")

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Storage.Backend != constants.StorageBackendMemory {
		t.Errorf("expected the environment to win, got %q", cfg.Storage.Backend)
	}
	if cfg.Output.Format != constants.OutputFormatYAML {
		t.Errorf("expected yaml output from the environment, got %q", cfg.Output.Format)
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"Malformed YAML", "storage: [unterminated"},
		{"Invalid import size", "server:\n  maxImportSize: 10 parsecs\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.contents)); err == nil {
				t.Errorf("LoadConfiguration() expected error but got none")
			}
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "postgres"
	cfg.Output.Format = "xml"
	cfg.Logging.Level = "trace"
	cfg.Server.Address = "localhost"
	cfg.Defaults.Currency = "EUR"

	problems := cfg.ValidateConfiguration()
	if len(problems) != 5 {
		t.Fatalf("expected 5 problems, got %d: %v", len(problems), problems)
	}
	if !strings.Contains(problems[0], "storage backend") {
		t.Errorf("expected the storage backend first, got %q", problems[0])
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input     string
		expected  int64
		expectErr bool
	}{
		{"", constants.DefaultMaxImportSizeBytes, false},
		{"512", 512, false},
		{"64kb", 64 * 1024, false},
		{"2M", 2 * 1024 * 1024, false},
		{"M", 0, true},
		{"5T", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseSize(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if !tt.expectErr && got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
