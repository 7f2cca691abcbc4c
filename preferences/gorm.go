package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preference is one persisted key-value row.
type Preference struct {
	Key       string    `gorm:"column:pref_key;type:varchar(64);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// PostgresConfig holds the connection settings for the postgres backend.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
	TimeZone string
}

// DSN renders the config as a libpq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.DB, c.Port, c.SSLMode, c.TimeZone)
}

// OpenPostgres connects and migrates the preferences table.
func OpenPostgres(cfg PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("preferences migration failed: %w", err)
	}
	return db, nil
}

// GormStore keeps preferences in the preferences table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (g *GormStore) Get(ctx context.Context, key string) (string, error) {
	var p Preference
	err := g.db.WithContext(ctx).Where("pref_key = ?", key).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

// Set upserts the row for key.
func (g *GormStore) Set(ctx context.Context, key, value string) error {
	p := Preference{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pref_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&p).Error
}
