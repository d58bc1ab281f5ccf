// Package repositories provides data access layer implementations.
// It handles persistence of the committed settings record.
package repositories

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/models"
	"sebengine/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    5,
	MaxOpenConns:    20,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB opens the Postgres connection, configures the pool and
// migrates the settings tables.
func InitDB(cfg *config.AppConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	// Configure GORM logger to ignore "record not found" errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	if err := db.AutoMigrate(&models.SettingsRow{}, &models.SettingsRevision{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings tables: %w", err)
	}

	log.Println("PostgreSQL connected & migrations applied successfully")
	return db, nil
}

// OpenSettingsRepository builds the repository selected by cfg.SettingsBackend.
// The returned close func releases the backing connection.
func OpenSettingsRepository(ctx context.Context, cfg *config.AppConfig) (SettingsRepository, func() error, error) {
	switch cfg.SettingsBackend {
	case config.BackendPostgres:
		db, err := InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return NewSettingsRepository(db), closeDB, nil

	case config.BackendRedis:
		client := cache.NewRedisClient(cache.RedisConfigFrom(cfg))
		svc := cache.NewCacheService(client)
		if err := svc.HealthCheck(ctx); err != nil {
			svc.Close()
			return nil, nil, err
		}
		log.Printf("Redis connected at %s:%s", cfg.RedisHost, cfg.RedisPort)
		return NewRedisSettingsRepository(svc), svc.Close, nil

	default:
		log.Println("Using in-memory settings store; commits will not survive a restart")
		return NewMemorySettingsRepository(), func() error { return nil }, nil
	}
}
