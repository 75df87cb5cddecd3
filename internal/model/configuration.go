package model

import (
	"time"

	"github.com/iwvelando/earning-formula/pkg/constants"
)

// WorkConfiguration is a named, timestamped, ordered collection of jobs.
// Jobs decodes and clones as an empty, non-nil slice; a configuration built
// with nil Jobs equals its Clone, not itself, after a round trip.
type WorkConfiguration struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Jobs []Job  `json:"jobs"`
	// CreatedAt is milliseconds since the Unix epoch. It is refreshed whenever
	// the configuration is explicitly saved again.
	CreatedAt int64 `json:"createdAt"`
}

// Clone returns a copy that shares no memory with c. Nil Jobs become an
// empty slice.
func (c WorkConfiguration) Clone() WorkConfiguration {
	c.Jobs = CloneJobs(c.Jobs)
	return c
}

// WithJobs returns a copy of c holding a copy of jobs.
func (c WorkConfiguration) WithJobs(jobs []Job) WorkConfiguration {
	c.Jobs = CloneJobs(jobs)
	return c
}

// Touched returns a copy of c with CreatedAt set to now.
func (c WorkConfiguration) Touched(now time.Time) WorkConfiguration {
	c = c.Clone()
	c.CreatedAt = now.UnixMilli()
	return c
}

// FindJob returns the index of the job with id, or -1.
func (c WorkConfiguration) FindJob(id string) int {
	return IndexOfJob(c.Jobs, id)
}

// CloneJobs copies a job slice. A nil input yields an empty, non-nil slice.
func CloneJobs(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	return out
}

// IndexOfJob returns the index of the job with id, or -1.
func IndexOfJob(jobs []Job, id string) int {
	for i, job := range jobs {
		if job.ID == id {
			return i
		}
	}
	return -1
}

// CloneConfigurations deep-copies a configuration slice.
func CloneConfigurations(configs []WorkConfiguration) []WorkConfiguration {
	out := make([]WorkConfiguration, len(configs))
	for i, c := range configs {
		out[i] = c.Clone()
	}
	return out
}

// ConfigurationRef identifies either the unsaved working buffer or a saved
// favorite. The zero value is the unsaved buffer.
type ConfigurationRef struct {
	id string
}

// UnsavedRef refers to the unsaved working configuration.
func UnsavedRef() ConfigurationRef {
	return ConfigurationRef{}
}

// SavedRef refers to the favorite with id. An empty id yields UnsavedRef.
func SavedRef(id string) ConfigurationRef {
	if id == constants.CurrentConfigurationID {
		return UnsavedRef()
	}
	return ConfigurationRef{id: id}
}

// ParseConfigurationRef maps the persisted form back to a ref.
func ParseConfigurationRef(s string) ConfigurationRef {
	return SavedRef(s)
}

// IsSaved reports whether r points at a favorite.
func (r ConfigurationRef) IsSaved() bool {
	return r.id != ""
}

// ID returns the favorite id, or "" for the unsaved buffer.
func (r ConfigurationRef) ID() string {
	return r.id
}

// String returns the persisted form: the favorite id or the "current" sentinel.
func (r ConfigurationRef) String() string {
	if !r.IsSaved() {
		return constants.CurrentConfigurationID
	}
	return r.id
}
