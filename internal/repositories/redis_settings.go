package repositories

import (
	"context"
	"fmt"

	"sebengine/internal/models"
	"sebengine/internal/repositories/cache"
)

type redisSettingsRepository struct {
	cache *cache.CacheService
}

// NewRedisSettingsRepository stores the settings record as JSON under
// models.SettingsKey with no expiry.
func NewRedisSettingsRepository(c *cache.CacheService) SettingsRepository {
	return &redisSettingsRepository{cache: c}
}

func (r *redisSettingsRepository) Load(ctx context.Context) (models.Settings, bool, error) {
	data, found, err := r.cache.GetRaw(ctx, models.SettingsKey)
	if err != nil {
		return models.Settings{}, false, err
	}
	if !found {
		return models.DefaultSettings(), false, nil
	}

	s, err := models.UnmarshalSettings(data)
	if err != nil {
		return models.Settings{}, false, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return s, true, nil
}

func (r *redisSettingsRepository) Save(ctx context.Context, s models.Settings) error {
	return r.cache.SetWithTTL(ctx, models.SettingsKey, s.Record(), cache.NoExpiration)
}

func (r *redisSettingsRepository) Ping(ctx context.Context) error {
	return r.cache.HealthCheck(ctx)
}
