package repositories

import (
	"context"
	"errors"

	"sebengine/internal/models"
)

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrCorruptRecord     = errors.New("stored settings record is corrupt")
)

// SettingsRepository defines persistence for the committed settings record
type SettingsRepository interface {
	// Load returns the committed settings. found is false when nothing has
	// been committed yet; the returned settings are then the defaults.
	Load(ctx context.Context) (s models.Settings, found bool, err error)

	// Save replaces the committed record. It returns only after the write
	// is durable in the backing store.
	Save(ctx context.Context, s models.Settings) error

	// Ping checks the backing store is reachable
	Ping(ctx context.Context) error
}

// Implementations live in settings_repository_impl.go, redis_settings.go and memory_settings.go
