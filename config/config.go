package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/amancoderhub/EMS-Event-management-System/preferences"
	"github.com/joho/godotenv"
)

// Preference backends selectable through PREFERENCES_BACKEND.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Port        string
	Env         string
	Preferences string
	PrefsPath   string
	RedisURL    string
	Postgres    preferences.PostgresConfig

	AWSRegion           string
	AWSEndpoint         string
	OrderEventsTopicARN string

	BcryptCost         int
	ToastDuration      time.Duration
	LoginRatePerMinute int
	LoginRateBurst     int
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		Preferences: getEnv("PREFERENCES_BACKEND", BackendFile),
		PrefsPath:   getEnv("PREFERENCES_PATH", "ems_prefs.db"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		Postgres: preferences.PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DB:       os.Getenv("POSTGRES_DB"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "Asia/Kolkata"),
		},
		AWSRegion:           os.Getenv("AWS_REGION"),
		AWSEndpoint:         os.Getenv("AWS_ENDPOINT"),
		OrderEventsTopicARN: os.Getenv("ORDER_EVENTS_TOPIC_ARN"),
	}

	var err error
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.LoginRatePerMinute, err = getInt("LOGIN_RATE_PER_MINUTE", 10); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateBurst, err = getInt("LOGIN_RATE_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.ToastDuration, err = getDuration("TOAST_DURATION", 2800*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.Preferences {
	case BackendFile, BackendMemory, BackendRedis:
	case BackendPostgres:
		if cfg.Postgres.User == "" || cfg.Postgres.Password == "" || cfg.Postgres.DB == "" {
			return Config{}, fmt.Errorf("database config incomplete")
		}
	default:
		return Config{}, fmt.Errorf("unknown PREFERENCES_BACKEND %q", cfg.Preferences)
	}
	if cfg.LoginRatePerMinute <= 0 || cfg.LoginRateBurst <= 0 {
		return Config{}, fmt.Errorf("login rate limits must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
