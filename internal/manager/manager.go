// Package manager owns the working set of jobs and decides when it is
// persisted as the unsaved buffer or as a favorite.
package manager

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/internal/salary"
	"go.uber.org/zap"
)

// UnsavedConfigurationName names the working set while no favorite is loaded.
const UnsavedConfigurationName = "Current configuration"

// Store is the persistence the manager needs. *store.Store implements it.
type Store interface {
	SaveConfiguration(ctx context.Context, config model.WorkConfiguration) error
	GetAllConfigurations(ctx context.Context) ([]model.WorkConfiguration, error)
	GetConfigurationByID(ctx context.Context, id string) (model.WorkConfiguration, bool, error)
	DeleteConfiguration(ctx context.Context, id string) error
	ExportConfigurations(ctx context.Context) (string, error)
	ImportConfigurations(ctx context.Context, data string, replaceExisting bool) (int, error)
	SaveLastConfigurationRef(ctx context.Context, ref model.ConfigurationRef) error
	LastConfiguration(ctx context.Context) (model.WorkConfiguration, model.ConfigurationRef, bool, error)
	SaveCurrentConfiguration(ctx context.Context, config model.WorkConfiguration) error
	SaveCurrency(ctx context.Context, currency model.Currency) error
	Currency(ctx context.Context) (model.Currency, error)
	SaveLanguage(ctx context.Context, lang model.Language) error
	Language(ctx context.Context) (model.Language, error)
}

// Options overrides the clock and the id generator.
type Options struct {
	Now   func() time.Time
	NewID func() string
}

// Manager serialises every operation on the working set. Failures are
// recorded in State.ErrorMessage and returned.
type Manager struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu    sync.Mutex
	state State
}

// New creates a Manager. Call Start before using it.
func New(logger *zap.Logger, store Store, opts Options) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Manager{
		store:  store,
		logger: logger,
		now:    opts.Now,
		newID:  opts.NewID,
		state: State{
			Jobs:                []model.Job{},
			SavedConfigurations: []model.WorkConfiguration{},
			Currency:            model.DefaultCurrency(),
			Language:            model.DefaultLanguage(),
		},
	}
}

// State returns a snapshot of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// Start loads favorites and preferences, then restores the last used
// configuration or seeds the sample one.
func (m *Manager) Start(ctx context.Context) error {
	return m.run("manager.Start", func() error {
		favorites, err := m.store.GetAllConfigurations(ctx)
		if err != nil {
			return err
		}
		m.state.SavedConfigurations = favorites

		currency, err := m.store.Currency(ctx)
		if err != nil {
			return err
		}
		m.state.Currency = currency

		lang, err := m.store.Language(ctx)
		if err != nil {
			return err
		}
		m.state.Language = lang

		return m.loadLastOrSample(ctx)
	})
}

// ReloadLastConfiguration discards the in-memory working set and restores the
// last used configuration from the store.
func (m *Manager) ReloadLastConfiguration(ctx context.Context) error {
	return m.run("manager.ReloadLastConfiguration", func() error {
		if err := m.refreshFavorites(ctx); err != nil {
			return err
		}
		return m.loadLastOrSample(ctx)
	})
}

// AddJob validates job and appends it to the working set. A job without an
// id gets a fresh one; the stored job is returned.
func (m *Manager) AddJob(ctx context.Context, job model.Job) (model.Job, error) {
	err := m.run("manager.AddJob", func() error {
		if strings.TrimSpace(job.ID) == "" {
			job.ID = m.newID()
		}
		if errs := salary.ValidateJob(job); len(errs) > 0 {
			return &ValidationError{Messages: errs}
		}
		if model.IndexOfJob(m.state.Jobs, job.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateJob, job.ID)
		}

		jobs := append(model.CloneJobs(m.state.Jobs), job)
		return m.commitJobs(ctx, jobs)
	})
	if err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// UpdateJob replaces the job with the same id.
func (m *Manager) UpdateJob(ctx context.Context, job model.Job) error {
	return m.run("manager.UpdateJob", func() error {
		if errs := salary.ValidateJob(job); len(errs) > 0 {
			return &ValidationError{Messages: errs}
		}
		i := model.IndexOfJob(m.state.Jobs, job.ID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrJobNotFound, job.ID)
		}

		jobs := model.CloneJobs(m.state.Jobs)
		jobs[i] = job
		return m.commitJobs(ctx, jobs)
	})
}

// DeleteJob removes the job with id.
func (m *Manager) DeleteJob(ctx context.Context, id string) error {
	return m.run("manager.DeleteJob", func() error {
		i := model.IndexOfJob(m.state.Jobs, id)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrJobNotFound, id)
		}

		jobs := model.CloneJobs(m.state.Jobs)
		jobs = append(jobs[:i], jobs[i+1:]...)
		return m.commitJobs(ctx, jobs)
	})
}

// ClearAllJobs empties the working set, detaches it from any loaded favorite
// and persists it as the unsaved buffer. The favorite itself is not changed.
func (m *Manager) ClearAllJobs(ctx context.Context) error {
	return m.run("manager.ClearAllJobs", func() error {
		if err := m.persistUnsaved(ctx, []model.Job{}); err != nil {
			return err
		}
		m.setLoaded(nil, []model.Job{})
		return nil
	})
}

// SaveConfiguration stores the working set as a favorite named name. When the
// loaded favorite already carries that name it is updated in place,
// otherwise a new favorite is created.
func (m *Manager) SaveConfiguration(ctx context.Context, name string) (model.WorkConfiguration, error) {
	var saved model.WorkConfiguration
	err := m.run("manager.SaveConfiguration", func() error {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyName
		}
		if len(m.state.Jobs) == 0 {
			return ErrNoJobs
		}

		var config model.WorkConfiguration
		if orig := m.state.OriginalLoaded; orig != nil && strings.TrimSpace(orig.Name) == name {
			config = orig.WithJobs(m.state.Jobs).Touched(m.now())
		} else {
			config = model.WorkConfiguration{
				ID:        m.newID(),
				Name:      name,
				Jobs:      model.CloneJobs(m.state.Jobs),
				CreatedAt: m.now().UnixMilli(),
			}
		}
		config.Name = name

		if err := m.store.SaveConfiguration(ctx, config); err != nil {
			return err
		}
		if err := m.store.SaveLastConfigurationRef(ctx, model.SavedRef(config.ID)); err != nil {
			return err
		}
		m.setLoaded(&config, config.Jobs)
		saved = config.Clone()

		m.logger.Info("saved configuration",
			zap.String("op", "manager.SaveConfiguration"),
			zap.String("id", config.ID),
			zap.String("name", config.Name),
		)
		return m.refreshFavorites(ctx)
	})
	return saved, err
}

// LoadConfiguration flushes pending edits, then makes the favorite with id
// the working set.
func (m *Manager) LoadConfiguration(ctx context.Context, id string) error {
	return m.run("manager.LoadConfiguration", func() error {
		if err := m.flush(ctx); err != nil {
			return err
		}

		target, ok, err := m.store.GetConfigurationByID(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrConfigurationNotFound, id)
		}
		if err := m.store.SaveLastConfigurationRef(ctx, model.SavedRef(target.ID)); err != nil {
			return err
		}
		m.setLoaded(&target, target.Jobs)

		m.logger.Info("loaded configuration",
			zap.String("op", "manager.LoadConfiguration"),
			zap.String("id", target.ID),
			zap.Int("jobs", len(target.Jobs)),
		)
		return m.refreshFavorites(ctx)
	})
}

// DeleteConfiguration removes a favorite. If it is loaded, its jobs stay in
// the working set and are persisted as the unsaved buffer.
func (m *Manager) DeleteConfiguration(ctx context.Context, id string) error {
	return m.run("manager.DeleteConfiguration", func() error {
		if err := m.store.DeleteConfiguration(ctx, id); err != nil {
			return err
		}
		if isLoaded(m.state.CurrentLoaded, id) || isLoaded(m.state.OriginalLoaded, id) {
			jobs := model.CloneJobs(m.state.Jobs)
			if err := m.persistUnsaved(ctx, jobs); err != nil {
				return err
			}
			m.setLoaded(nil, jobs)
		}
		return m.refreshFavorites(ctx)
	})
}

// CreateNewConfigurationWithName stores an empty favorite named name and
// loads it, discarding the working set.
func (m *Manager) CreateNewConfigurationWithName(ctx context.Context, name string) (model.WorkConfiguration, error) {
	var created model.WorkConfiguration
	err := m.run("manager.CreateNewConfigurationWithName", func() error {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyName
		}

		config := model.WorkConfiguration{
			ID:        m.newID(),
			Name:      name,
			Jobs:      []model.Job{},
			CreatedAt: m.now().UnixMilli(),
		}
		if err := m.store.SaveConfiguration(ctx, config); err != nil {
			return err
		}
		if err := m.store.SaveLastConfigurationRef(ctx, model.SavedRef(config.ID)); err != nil {
			return err
		}
		m.setLoaded(&config, config.Jobs)
		created = config.Clone()
		return m.refreshFavorites(ctx)
	})
	return created, err
}

// CreateNewConfiguration flushes pending edits and starts an empty unsaved
// working set.
func (m *Manager) CreateNewConfiguration(ctx context.Context) error {
	return m.run("manager.CreateNewConfiguration", func() error {
		if err := m.flush(ctx); err != nil {
			return err
		}
		if err := m.persistUnsaved(ctx, []model.Job{}); err != nil {
			return err
		}
		m.setLoaded(nil, []model.Job{})
		return nil
	})
}

// RefreshSavedConfigurations re-reads the favorites list.
func (m *Manager) RefreshSavedConfigurations(ctx context.Context) error {
	return m.run("manager.RefreshSavedConfigurations", func() error {
		return m.refreshFavorites(ctx)
	})
}

// ExportConfigurations returns every favorite as JSON.
func (m *Manager) ExportConfigurations(ctx context.Context) (string, error) {
	var data string
	err := m.run("manager.ExportConfigurations", func() error {
		var err error
		data, err = m.store.ExportConfigurations(ctx)
		return err
	})
	return data, err
}

// ImportConfigurations merges data into the favorites, optionally replacing
// them, and returns how many configurations were imported.
func (m *Manager) ImportConfigurations(ctx context.Context, data string, replaceExisting bool) (int, error) {
	var n int
	err := m.run("manager.ImportConfigurations", func() error {
		var err error
		n, err = m.store.ImportConfigurations(ctx, data, replaceExisting)
		if err != nil {
			return err
		}
		if err := m.refreshFavorites(ctx); err != nil {
			return err
		}
		if loaded := m.state.CurrentLoaded; loaded != nil && indexOf(m.state.SavedConfigurations, loaded.ID) < 0 {
			m.state.CurrentLoaded = nil
			m.state.OriginalLoaded = nil
		}

		m.logger.Info("imported configurations",
			zap.String("op", "manager.ImportConfigurations"),
			zap.Int("imported", n),
			zap.Bool("replace", replaceExisting),
		)
		return nil
	})
	return n, err
}

// ChangeCurrency selects and stores the display currency.
func (m *Manager) ChangeCurrency(ctx context.Context, code string) error {
	return m.run("manager.ChangeCurrency", func() error {
		currency, ok := model.LookupCurrency(code)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
		}
		if err := m.store.SaveCurrency(ctx, currency); err != nil {
			return err
		}
		m.state.Currency = currency
		return nil
	})
}

// ChangeLanguage selects and stores the display language.
func (m *Manager) ChangeLanguage(ctx context.Context, code string) error {
	return m.run("manager.ChangeLanguage", func() error {
		lang, ok := model.LookupLanguage(code)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
		}
		if err := m.store.SaveLanguage(ctx, lang); err != nil {
			return err
		}
		m.state.Language = lang
		return nil
	})
}

// ClearError resets the error message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ErrorMessage = ""
}

// run executes fn under the manager lock and turns failures, including
// panics, into the error message.
func (m *Manager) run(op string, fn func() error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
			m.logger.Error("recovered from panic",
				zap.String("op", op),
				zap.Any("panic", r),
			)
		}
		if err != nil {
			m.state.ErrorMessage = err.Error()
			m.logger.Warn("operation failed",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}()

	return fn()
}

func (m *Manager) loadLastOrSample(ctx context.Context) error {
	config, ref, ok, err := m.store.LastConfiguration(ctx)
	if err != nil {
		return err
	}
	if ok {
		if ref.IsSaved() {
			m.setLoaded(&config, config.Jobs)
		} else {
			m.setLoaded(nil, config.Jobs)
		}
		m.logger.Debug("restored last configuration",
			zap.String("op", "manager.loadLastOrSample"),
			zap.String("ref", ref.String()),
		)
		return nil
	}

	var target model.WorkConfiguration
	if len(m.state.SavedConfigurations) == 0 {
		target = salary.SampleConfiguration(m.now())
		if err := m.store.SaveConfiguration(ctx, target); err != nil {
			return err
		}
		m.logger.Info("seeded sample configuration",
			zap.String("op", "manager.loadLastOrSample"),
		)
	} else {
		target = m.state.SavedConfigurations[0].Clone()
	}

	if err := m.store.SaveLastConfigurationRef(ctx, model.SavedRef(target.ID)); err != nil {
		return err
	}
	m.setLoaded(&target, target.Jobs)
	return m.refreshFavorites(ctx)
}

// commitJobs persists jobs as the working set and only then adopts them.
func (m *Manager) commitJobs(ctx context.Context, jobs []model.Job) error {
	if loaded := m.state.CurrentLoaded; loaded != nil {
		updated := loaded.WithJobs(jobs)
		if err := m.store.SaveConfiguration(ctx, updated); err != nil {
			return err
		}
		m.setLoaded(&updated, jobs)
		return m.refreshFavorites(ctx)
	}

	if err := m.persistUnsaved(ctx, jobs); err != nil {
		return err
	}
	m.setLoaded(nil, jobs)
	return nil
}

// flush writes a non-empty working set back before the working set is
// replaced.
func (m *Manager) flush(ctx context.Context) error {
	if len(m.state.Jobs) == 0 {
		return nil
	}
	return m.commitJobs(ctx, m.state.Jobs)
}

func (m *Manager) persistUnsaved(ctx context.Context, jobs []model.Job) error {
	buffer := model.WorkConfiguration{
		Name:      UnsavedConfigurationName,
		Jobs:      model.CloneJobs(jobs),
		CreatedAt: m.now().UnixMilli(),
	}
	if err := m.store.SaveCurrentConfiguration(ctx, buffer); err != nil {
		return err
	}
	return m.store.SaveLastConfigurationRef(ctx, model.UnsavedRef())
}

// setLoaded replaces the working set. A nil config detaches it from any
// favorite.
func (m *Manager) setLoaded(config *model.WorkConfiguration, jobs []model.Job) {
	m.state.Jobs = model.CloneJobs(jobs)
	m.state.CurrentLoaded = clonePtr(config)
	m.state.OriginalLoaded = clonePtr(config)

	if len(m.state.Jobs) == 0 {
		m.state.TotalResult = nil
		return
	}
	total := salary.CalculateJobsTotal(m.state.Jobs)
	m.state.TotalResult = &total
}

func (m *Manager) refreshFavorites(ctx context.Context) error {
	favorites, err := m.store.GetAllConfigurations(ctx)
	if err != nil {
		return err
	}
	m.state.SavedConfigurations = favorites
	return nil
}

func isLoaded(config *model.WorkConfiguration, id string) bool {
	return config != nil && config.ID == id
}

func indexOf(configs []model.WorkConfiguration, id string) int {
	for i, c := range configs {
		if c.ID == id {
			return i
		}
	}
	return -1
}
