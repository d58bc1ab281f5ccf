package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRow stores a committed settings record under its namespaced key.
type SettingsRow struct {
	Key       string `gorm:"primaryKey;size:64"`
	Payload   string `gorm:"type:text;not null"`
	Revision  string `gorm:"size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SettingsRevision is an append-only audit row written on every commit.
type SettingsRevision struct {
	ID          string `gorm:"primaryKey;size:36"`
	Key         string `gorm:"index;size:64;not null"`
	Payload     string `gorm:"type:text;not null"`
	CommittedAt time.Time
}

func (r *SettingsRevision) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CommittedAt.IsZero() {
		r.CommittedAt = time.Now().UTC()
	}
	return nil
}
