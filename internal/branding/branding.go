// Package branding loads and saves the tenant branding config.
//
// The config is one JSON document under a fixed key. Reads never fail the
// caller: a missing key, a storage error or malformed JSON all fall back to
// the defaults and are logged.
package branding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/dealdesk/internal/models"
)

// Key is the settings key the branding document is stored under.
const Key = "website-config"

// ErrInvalid is returned (wrapped) when a config fails validation.
var ErrInvalid = errors.New("invalid branding config")

// Store is the persistence the manager needs. storage.SettingsStore satisfies it.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Manager reads and writes the branding config.
type Manager struct {
	store    Store
	defaults models.BrandingConfig
	validate *validator.Validate
	logger   *slog.Logger
}

// NewManager creates a manager backed by store. A nil logger uses slog.Default().
func NewManager(store Store, defaults models.BrandingConfig, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:    store,
		defaults: defaults,
		validate: validator.New(),
		logger:   logger,
	}
}

// Defaults returns the config used when nothing valid is stored.
func (m *Manager) Defaults() models.BrandingConfig {
	return m.defaults
}

// Load returns the stored config, or the defaults if none is usable.
// Fields missing from the stored document keep their default values.
func (m *Manager) Load(ctx context.Context) models.BrandingConfig {
	raw, ok, err := m.store.GetSetting(ctx, Key)
	if err != nil {
		m.logger.Warn("Failed to read branding config, using defaults", "key", Key, "error", err)
		return m.defaults
	}
	if !ok {
		return m.defaults
	}

	cfg := m.defaults
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		m.logger.Warn("Malformed branding config, using defaults", "key", Key, "error", err)
		return m.defaults
	}
	return cfg
}

// Validate checks the colour fields are hex colours.
func (m *Manager) Validate(cfg models.BrandingConfig) error {
	if err := m.validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Save validates and persists cfg.
func (m *Manager) Save(ctx context.Context, cfg models.BrandingConfig) error {
	if err := m.Validate(cfg); err != nil {
		return err
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode branding config: %w", err)
	}
	if err := m.store.PutSetting(ctx, Key, string(raw)); err != nil {
		m.logger.Error("Failed to save branding config", "key", Key, "error", err)
		return err
	}
	m.logger.Info("Branding config saved", "primary_color", cfg.PrimaryColor, "secondary_color", cfg.SecondaryColor)
	return nil
}

// Reset removes the stored config and returns the defaults.
func (m *Manager) Reset(ctx context.Context) (models.BrandingConfig, error) {
	if err := m.store.DeleteSetting(ctx, Key); err != nil {
		m.logger.Error("Failed to reset branding config", "key", Key, "error", err)
		return m.defaults, err
	}
	return m.defaults, nil
}
