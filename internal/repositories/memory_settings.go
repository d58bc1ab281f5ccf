package repositories

import (
	"context"
	"sync"

	"sebengine/internal/models"
)

// MemorySettingsRepository keeps the encoded record in process memory.
// It is used for local runs and tests.
type MemorySettingsRepository struct {
	mu      sync.RWMutex
	payload []byte
}

func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) Load(ctx context.Context) (models.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.payload == nil {
		return models.DefaultSettings(), false, nil
	}
	s, err := models.UnmarshalSettings(r.payload)
	if err != nil {
		return models.Settings{}, false, err
	}
	return s, true, nil
}

func (r *MemorySettingsRepository) Save(ctx context.Context, s models.Settings) error {
	payload, err := models.MarshalSettings(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.payload = payload
	r.mu.Unlock()
	return nil
}

func (r *MemorySettingsRepository) Ping(ctx context.Context) error {
	return nil
}
