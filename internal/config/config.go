package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings persistence backends.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Version is the released version of the engine.
const Version = "4.2.1"

const (
	defaultJWTSecret = "seb-engine-dev-secret"
	defaultPasscode  = "332"
)

// AppConfig holds everything the server needs at startup.
type AppConfig struct {
	Port            string
	Env             string
	SettingsBackend string
	CORSOrigins     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret         string
	AdminSessionTTL   time.Duration
	AdminPasscodeHash string
	AdminPasscode     string

	CalculatorSessionTTL time.Duration
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the application configuration from the environment.
func Load() *AppConfig {
	cfg := &AppConfig{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		SettingsBackend: strings.ToLower(GetEnv("SETTINGS_BACKEND", BackendRedis)),
		CORSOrigins:     GetEnv("CORS_ORIGINS", "http://localhost:5173"),

		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),
		DBName:     GetEnv("DB_NAME", "seb"),

		JWTSecret:         GetEnv("JWT_SECRET", defaultJWTSecret),
		AdminSessionTTL:   GetDurationEnv("ADMIN_SESSION_TTL", 30*time.Minute),
		AdminPasscodeHash: GetEnv("ADMIN_PASSCODE_HASH", ""),
		AdminPasscode:     GetEnv("ADMIN_PASSCODE", defaultPasscode),

		CalculatorSessionTTL: GetDurationEnv("CALCULATOR_SESSION_TTL", time.Hour),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("WARNING: using default JWT_SECRET. Set JWT_SECRET for production.")
	}
	if cfg.AdminPasscodeHash == "" && cfg.AdminPasscode == defaultPasscode {
		log.Println("WARNING: using default admin passcode. Set ADMIN_PASSCODE_HASH for production.")
	}

	switch cfg.SettingsBackend {
	case BackendRedis, BackendPostgres, BackendMemory:
	default:
		log.Printf("unknown SETTINGS_BACKEND %q, using %s", cfg.SettingsBackend, BackendMemory)
		cfg.SettingsBackend = BackendMemory
	}

	return cfg
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
		log.Printf("invalid %s %q, using default %s", key, val, defaultVal)
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
