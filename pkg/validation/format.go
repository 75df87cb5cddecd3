// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/earning-formula/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	return oneOf("output format", format, constants.OutputFormats())
}

// ValidateStorageBackend checks if the storage backend is one of the supported backends.
func ValidateStorageBackend(backend string) error {
	return oneOf("storage backend", backend, constants.StorageBackends())
}

// ValidateLogLevel accepts the zap level names used in configuration files.
// An empty level selects the default.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	return oneOf("log level", level, []string{"debug", "info", "warn", "error"})
}

// ValidateLogFormat accepts json and console. An empty format selects the default.
func ValidateLogFormat(format string) error {
	if format == "" {
		return nil
	}
	return oneOf("log format", format, []string{"json", "console"})
}

func oneOf(kind, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("expected %s of %s, got %q", kind, strings.Join(allowed, ", "), value)
}
