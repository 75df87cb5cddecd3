package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iwvelando/earning-formula/internal/model"
)

// ErrCorruptData is wrapped by every decoding failure of persisted or
// imported configuration JSON.
var ErrCorruptData = errors.New("corrupt configuration data")

type configurationRecord struct {
	ID        *string      `json:"id"`
	Name      *string      `json:"name"`
	CreatedAt *int64       `json:"createdAt"`
	Jobs      *[]jobRecord `json:"jobs"`
}

type jobRecord struct {
	ID                *string    `json:"id"`
	Name              *string    `json:"name"`
	MonthlySalary     *float64   `json:"monthlySalary"`
	InputType         string     `json:"inputType"`
	TotalMonthlyHours float64    `json:"totalMonthlyHours"`
	HoursPerDay       weekRecord `json:"hoursPerDay"`
}

// weekRecord spells out every day so encoded jobs always carry all seven
// keys in Monday-first order. Missing days decode to 0.
type weekRecord struct {
	Monday    float64 `json:"MONDAY"`
	Tuesday   float64 `json:"TUESDAY"`
	Wednesday float64 `json:"WEDNESDAY"`
	Thursday  float64 `json:"THURSDAY"`
	Friday    float64 `json:"FRIDAY"`
	Saturday  float64 `json:"SATURDAY"`
	Sunday    float64 `json:"SUNDAY"`
}

func toWeekRecord(w model.WeekHours) weekRecord {
	return weekRecord{
		Monday:    w.Get(model.Monday),
		Tuesday:   w.Get(model.Tuesday),
		Wednesday: w.Get(model.Wednesday),
		Thursday:  w.Get(model.Thursday),
		Friday:    w.Get(model.Friday),
		Saturday:  w.Get(model.Saturday),
		Sunday:    w.Get(model.Sunday),
	}
}

func (r weekRecord) toModel() model.WeekHours {
	return model.WeekHours{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday, r.Saturday, r.Sunday}
}

func toJobRecord(job model.Job) jobRecord {
	id, name, salary := job.ID, job.Name, job.MonthlySalary
	return jobRecord{
		ID:                &id,
		Name:              &name,
		MonthlySalary:     &salary,
		InputType:         string(job.Mode()),
		TotalMonthlyHours: job.TotalMonthlyHours,
		HoursPerDay:       toWeekRecord(job.HoursPerDay),
	}
}

func (r jobRecord) toModel() (model.Job, error) {
	switch {
	case r.ID == nil:
		return model.Job{}, errors.New("job is missing id")
	case r.Name == nil:
		return model.Job{}, fmt.Errorf("job %s is missing name", *r.ID)
	case r.MonthlySalary == nil:
		return model.Job{}, fmt.Errorf("job %s is missing monthlySalary", *r.ID)
	}

	inputType, _ := model.ParseJobInputType(r.InputType)
	return model.Job{
		ID:                *r.ID,
		Name:              *r.Name,
		MonthlySalary:     *r.MonthlySalary,
		InputType:         inputType,
		HoursPerDay:       r.HoursPerDay.toModel(),
		TotalMonthlyHours: r.TotalMonthlyHours,
	}, nil
}

func toConfigurationRecord(config model.WorkConfiguration) configurationRecord {
	id, name, createdAt := config.ID, config.Name, config.CreatedAt
	jobs := make([]jobRecord, 0, len(config.Jobs))
	for _, job := range config.Jobs {
		jobs = append(jobs, toJobRecord(job))
	}
	return configurationRecord{ID: &id, Name: &name, CreatedAt: &createdAt, Jobs: &jobs}
}

func (r configurationRecord) toModel() (model.WorkConfiguration, error) {
	switch {
	case r.ID == nil:
		return model.WorkConfiguration{}, errors.New("configuration is missing id")
	case r.Name == nil:
		return model.WorkConfiguration{}, fmt.Errorf("configuration %s is missing name", *r.ID)
	case r.CreatedAt == nil:
		return model.WorkConfiguration{}, fmt.Errorf("configuration %s is missing createdAt", *r.ID)
	case r.Jobs == nil:
		return model.WorkConfiguration{}, fmt.Errorf("configuration %s is missing jobs", *r.ID)
	}

	jobs := make([]model.Job, 0, len(*r.Jobs))
	for i, jr := range *r.Jobs {
		job, err := jr.toModel()
		if err != nil {
			return model.WorkConfiguration{}, fmt.Errorf("configuration %s job %d: %w", *r.ID, i, err)
		}
		jobs = append(jobs, job)
	}

	return model.WorkConfiguration{
		ID:        *r.ID,
		Name:      *r.Name,
		Jobs:      jobs,
		CreatedAt: *r.CreatedAt,
	}, nil
}

// EncodeConfiguration renders one configuration as a JSON object.
func EncodeConfiguration(config model.WorkConfiguration) (string, error) {
	data, err := json.Marshal(toConfigurationRecord(config))
	if err != nil {
		return "", fmt.Errorf("failed to encode configuration %s: %w", config.ID, err)
	}
	return string(data), nil
}

// DecodeConfiguration parses one configuration JSON object.
func DecodeConfiguration(data string) (model.WorkConfiguration, error) {
	var record configurationRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return model.WorkConfiguration{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	config, err := record.toModel()
	if err != nil {
		return model.WorkConfiguration{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return config, nil
}

// EncodeConfigurations renders configurations as a JSON array. An empty or
// nil list encodes as [].
func EncodeConfigurations(configs []model.WorkConfiguration) (string, error) {
	return encodeConfigurations(configs, false)
}

// EncodeConfigurationsIndent is EncodeConfigurations with two-space indentation.
func EncodeConfigurationsIndent(configs []model.WorkConfiguration) (string, error) {
	return encodeConfigurations(configs, true)
}

func encodeConfigurations(configs []model.WorkConfiguration, indent bool) (string, error) {
	records := make([]configurationRecord, 0, len(configs))
	for _, c := range configs {
		records = append(records, toConfigurationRecord(c))
	}

	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode configurations: %w", err)
	}
	return string(data), nil
}

// DecodeConfigurations parses a JSON array of configurations. Any malformed
// entry fails the whole decode.
func DecodeConfigurations(data string) ([]model.WorkConfiguration, error) {
	var records []configurationRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of configurations", ErrCorruptData)
	}

	configs := make([]model.WorkConfiguration, 0, len(records))
	for i, r := range records {
		config, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorruptData, i, err)
		}
		configs = append(configs, config)
	}
	return configs, nil
}
