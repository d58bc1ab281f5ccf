package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sebengine/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a Postgres-backed SettingsRepository.
// Every save also appends a row to the revision audit table.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, bool, error) {
	var row models.SettingsRow
	err := r.db.WithContext(ctx).Where("key = ?", models.SettingsKey).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSettings(), false, nil
		}
		log.Printf("Database error loading settings: %v", err)
		return models.Settings{}, false, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	s, err := models.UnmarshalSettings([]byte(row.Payload))
	if err != nil {
		return models.Settings{}, false, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	return s, true, nil
}

func (r *settingsRepository) Save(ctx context.Context, s models.Settings) error {
	payload, err := models.MarshalSettings(s)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		revision := models.SettingsRevision{
			Key:     models.SettingsKey,
			Payload: string(payload),
		}
		if err := tx.Create(&revision).Error; err != nil {
			return err
		}

		row := models.SettingsRow{
			Key:      models.SettingsKey,
			Payload:  string(payload),
			Revision: revision.ID,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "revision", "updated_at"}),
		}).Create(&row).Error
	})
	if err != nil {
		log.Printf("Database error saving settings: %v", err)
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (r *settingsRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
