package manager

import (
	"errors"
	"strings"
)

// Sentinel errors reported by manager operations.
var (
	ErrEmptyName             = errors.New("configuration name must not be empty")
	ErrNoJobs                = errors.New("add at least one job before saving")
	ErrJobNotFound           = errors.New("job not found")
	ErrDuplicateJob          = errors.New("a job with this id already exists")
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrUnknownCurrency       = errors.New("unsupported currency")
	ErrUnknownLanguage       = errors.New("unsupported language")
)

// ValidationError carries every rule a job violated.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
