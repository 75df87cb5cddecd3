// Package store persists configurations and preferences in a kv.Backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/iwvelando/earning-formula/internal/kv"
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"go.uber.org/zap"
)

// ErrConfigurationNotFound is returned when an update targets an id that is
// not stored.
var ErrConfigurationNotFound = errors.New("configuration not found")

// ConfigurationError is the domain-level error for every failed store
// operation. Err keeps the backend or decode cause.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	return &ConfigurationError{Op: op, Err: err}
}

// Options customises preference defaults.
type Options struct {
	// DefaultCurrency is the code returned while no currency was saved.
	DefaultCurrency string
	// Getenv resolves the host locale for the default language. Defaults to
	// os.Getenv.
	Getenv func(string) string
}

// Store is the only reader and writer of the configuration keys.
type Store struct {
	backend kv.Backend
	logger  *zap.Logger
	opts    Options

	// mu serialises the read-modify-write cycles on the favorites list.
	mu sync.Mutex
}

// New creates a Store on top of backend.
func New(logger *zap.Logger, backend kv.Backend, opts Options) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if strings.TrimSpace(opts.DefaultCurrency) == "" {
		opts.DefaultCurrency = constants.DefaultCurrencyCode
	}
	return &Store{backend: backend, logger: logger, opts: opts}
}

// SaveConfiguration inserts config or replaces the stored entry with the same
// id, keeping the list sorted by CreatedAt descending.
func (s *Store) SaveConfiguration(ctx context.Context, config model.WorkConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return wrap("failed to save configuration", err)
	}
	configs = upsert(configs, config)
	if err := s.writeAll(ctx, configs); err != nil {
		return wrap("failed to save configuration", err)
	}

	s.logger.Debug("saved configuration",
		zap.String("op", "store.SaveConfiguration"),
		zap.String("id", config.ID),
		zap.String("name", config.Name),
		zap.Int("jobs", len(config.Jobs)),
	)
	return nil
}

// UpdateConfiguration replaces an existing entry. It fails with
// ErrConfigurationNotFound when the id is not stored.
func (s *Store) UpdateConfiguration(ctx context.Context, config model.WorkConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return wrap("failed to update configuration", err)
	}
	if indexOf(configs, config.ID) < 0 {
		return wrap("failed to update configuration", fmt.Errorf("%w: %s", ErrConfigurationNotFound, config.ID))
	}
	configs = upsert(configs, config)
	if err := s.writeAll(ctx, configs); err != nil {
		return wrap("failed to update configuration", err)
	}

	s.logger.Debug("updated configuration",
		zap.String("op", "store.UpdateConfiguration"),
		zap.String("id", config.ID),
	)
	return nil
}

// GetAllConfigurations returns every favorite, newest first. A missing key
// yields an empty list; a malformed list fails with ErrCorruptData.
func (s *Store) GetAllConfigurations(ctx context.Context) ([]model.WorkConfiguration, error) {
	configs, err := s.readAll(ctx)
	if err != nil {
		return nil, wrap("failed to load configurations", err)
	}
	return configs, nil
}

// GetConfigurationByID returns the favorite with id and whether it exists.
func (s *Store) GetConfigurationByID(ctx context.Context, id string) (model.WorkConfiguration, bool, error) {
	configs, err := s.readAll(ctx)
	if err != nil {
		return model.WorkConfiguration{}, false, wrap("failed to load configuration", err)
	}
	if i := indexOf(configs, id); i >= 0 {
		return configs[i], true, nil
	}
	return model.WorkConfiguration{}, false, nil
}

// DeleteConfiguration removes the favorite with id. Deleting a missing id is
// a no-op.
func (s *Store) DeleteConfiguration(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return wrap("failed to delete configuration", err)
	}
	i := indexOf(configs, id)
	if i < 0 {
		return nil
	}
	configs = append(configs[:i], configs[i+1:]...)
	if err := s.writeAll(ctx, configs); err != nil {
		return wrap("failed to delete configuration", err)
	}

	s.logger.Debug("deleted configuration",
		zap.String("op", "store.DeleteConfiguration"),
		zap.String("id", id),
	)
	return nil
}

// DeleteAllConfigurations removes the favorites list entirely.
func (s *Store) DeleteAllConfigurations(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(ctx, constants.KeyConfigurations); err != nil {
		return wrap("failed to delete configurations", err)
	}
	s.logger.Debug("deleted all configurations",
		zap.String("op", "store.DeleteAllConfigurations"),
	)
	return nil
}

// ConfigurationNameExists reports whether a favorite is named name, ignoring
// case and surrounding whitespace.
func (s *Store) ConfigurationNameExists(ctx context.Context, name string) (bool, error) {
	configs, err := s.readAll(ctx)
	if err != nil {
		return false, wrap("failed to check configuration name", err)
	}
	name = strings.TrimSpace(name)
	for _, c := range configs {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return true, nil
		}
	}
	return false, nil
}

// ConfigurationsCount returns the number of favorites.
func (s *Store) ConfigurationsCount(ctx context.Context) (int, error) {
	configs, err := s.readAll(ctx)
	if err != nil {
		return 0, wrap("failed to count configurations", err)
	}
	return len(configs), nil
}

// ExportConfigurations renders every favorite as an indented JSON array.
func (s *Store) ExportConfigurations(ctx context.Context) (string, error) {
	configs, err := s.readAll(ctx)
	if err != nil {
		return "", wrap("failed to export configurations", err)
	}
	data, err := EncodeConfigurationsIndent(configs)
	if err != nil {
		return "", wrap("failed to export configurations", err)
	}
	return data, nil
}

// ImportConfigurations merges the configurations in data into the favorites
// by id and returns how many were imported. With replaceExisting the current
// favorites are dropped first. A malformed payload changes nothing.
func (s *Store) ImportConfigurations(ctx context.Context, data string, replaceExisting bool) (int, error) {
	imported, err := DecodeConfigurations(data)
	if err != nil {
		return 0, wrap("failed to import configurations", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var configs []model.WorkConfiguration
	if !replaceExisting {
		configs, err = s.readAll(ctx)
		if err != nil {
			return 0, wrap("failed to import configurations", err)
		}
	}
	for _, c := range imported {
		configs = upsert(configs, c)
	}
	if err := s.writeAll(ctx, configs); err != nil {
		return 0, wrap("failed to import configurations", err)
	}

	s.logger.Info("imported configurations",
		zap.String("op", "store.ImportConfigurations"),
		zap.Int("imported", len(imported)),
		zap.Int("total", len(configs)),
		zap.Bool("replace", replaceExisting),
	)
	return len(imported), nil
}

// SaveLastConfigurationRef remembers which configuration to reload at startup.
func (s *Store) SaveLastConfigurationRef(ctx context.Context, ref model.ConfigurationRef) error {
	if err := s.backend.Set(ctx, constants.KeyLastConfigurationID, ref.String()); err != nil {
		return wrap("failed to save last configuration", err)
	}
	return nil
}

// LastConfigurationRef returns the remembered ref and whether one was saved.
func (s *Store) LastConfigurationRef(ctx context.Context) (model.ConfigurationRef, bool, error) {
	value, ok, err := s.backend.Get(ctx, constants.KeyLastConfigurationID)
	if err != nil {
		return model.ConfigurationRef{}, false, wrap("failed to load last configuration", err)
	}
	if !ok || strings.TrimSpace(value) == "" {
		return model.ConfigurationRef{}, false, nil
	}
	return model.ParseConfigurationRef(value), true, nil
}

// LastConfiguration resolves the remembered ref to the unsaved buffer or a
// favorite. It reports false when nothing was remembered or the target no
// longer exists.
func (s *Store) LastConfiguration(ctx context.Context) (model.WorkConfiguration, model.ConfigurationRef, bool, error) {
	ref, ok, err := s.LastConfigurationRef(ctx)
	if err != nil || !ok {
		return model.WorkConfiguration{}, ref, false, err
	}

	if !ref.IsSaved() {
		config, found, err := s.CurrentConfiguration(ctx)
		return config, ref, found, err
	}
	config, found, err := s.GetConfigurationByID(ctx, ref.ID())
	return config, ref, found, err
}

// SaveCurrentConfiguration stores the unsaved working configuration.
func (s *Store) SaveCurrentConfiguration(ctx context.Context, config model.WorkConfiguration) error {
	config = config.Clone()
	config.ID = constants.CurrentConfigurationID
	data, err := EncodeConfiguration(config)
	if err != nil {
		return wrap("failed to save current configuration", err)
	}
	if err := s.backend.Set(ctx, constants.KeyCurrentConfiguration, data); err != nil {
		return wrap("failed to save current configuration", err)
	}
	return nil
}

// CurrentConfiguration returns the unsaved working configuration. An
// undecodable buffer is reported as absent.
func (s *Store) CurrentConfiguration(ctx context.Context) (model.WorkConfiguration, bool, error) {
	data, ok, err := s.backend.Get(ctx, constants.KeyCurrentConfiguration)
	if err != nil {
		return model.WorkConfiguration{}, false, wrap("failed to load current configuration", err)
	}
	if !ok {
		return model.WorkConfiguration{}, false, nil
	}

	config, err := DecodeConfiguration(data)
	if err != nil {
		s.logger.Warn("discarding unreadable current configuration",
			zap.String("op", "store.CurrentConfiguration"),
			zap.Error(err),
		)
		return model.WorkConfiguration{}, false, nil
	}
	config.ID = ""
	return config, true, nil
}

// SaveCurrency stores the selected display currency.
func (s *Store) SaveCurrency(ctx context.Context, currency model.Currency) error {
	if err := s.backend.Set(ctx, constants.KeyCurrency, currency.Code); err != nil {
		return wrap("failed to save currency", err)
	}
	return nil
}

// Currency returns the saved currency, or the default one.
func (s *Store) Currency(ctx context.Context) (model.Currency, error) {
	code, ok, err := s.backend.Get(ctx, constants.KeyCurrency)
	if err != nil {
		return model.Currency{}, wrap("failed to load currency", err)
	}
	if !ok {
		code = s.opts.DefaultCurrency
	}
	return model.CurrencyFromCode(code), nil
}

// SaveLanguage stores the selected display language.
func (s *Store) SaveLanguage(ctx context.Context, lang model.Language) error {
	if err := s.backend.Set(ctx, constants.KeyLanguage, lang.Code); err != nil {
		return wrap("failed to save language", err)
	}
	return nil
}

// Language returns the saved language, or the host language when none was
// saved.
func (s *Store) Language(ctx context.Context) (model.Language, error) {
	code, ok, err := s.backend.Get(ctx, constants.KeyLanguage)
	if err != nil {
		return model.Language{}, wrap("failed to load language", err)
	}
	if ok {
		if lang, found := model.LookupLanguage(code); found {
			return lang, nil
		}
	}
	return model.HostLanguage(s.opts.Getenv), nil
}

func (s *Store) readAll(ctx context.Context) ([]model.WorkConfiguration, error) {
	data, ok, err := s.backend.Get(ctx, constants.KeyConfigurations)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(data) == "" {
		return []model.WorkConfiguration{}, nil
	}
	configs, err := DecodeConfigurations(data)
	if err != nil {
		s.logger.Error("stored configurations are corrupt",
			zap.String("op", "store.readAll"),
			zap.Error(err),
		)
		return nil, err
	}
	return configs, nil
}

func (s *Store) writeAll(ctx context.Context, configs []model.WorkConfiguration) error {
	sortByCreatedAt(configs)
	data, err := EncodeConfigurations(configs)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, constants.KeyConfigurations, data)
}

func upsert(configs []model.WorkConfiguration, config model.WorkConfiguration) []model.WorkConfiguration {
	out := make([]model.WorkConfiguration, 0, len(configs)+1)
	for _, c := range configs {
		if c.ID != config.ID {
			out = append(out, c)
		}
	}
	return append(out, config.Clone())
}

func indexOf(configs []model.WorkConfiguration, id string) int {
	for i, c := range configs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func sortByCreatedAt(configs []model.WorkConfiguration) {
	sort.SliceStable(configs, func(i, j int) bool {
		return configs[i].CreatedAt > configs[j].CreatedAt
	})
}
