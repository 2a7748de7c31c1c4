package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
	"github.com/yoockh/portfolio/internal/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitPostgres opens the lib/pq pool and layers gorm on top of it. The
// returned *sql.DB is the same pool, for goose.
func InitPostgres(s Settings) (*gorm.DB, *sql.DB, error) {
	if s.PostgresURI == "" {
		return nil, nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	sqlDB, err := sql.Open("postgres", s.PostgresURI)
	if err != nil {
		return nil, nil, err
	}

	// Connection Pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger(s),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}

// MigratePostgres applies the embedded goose migrations.
func MigratePostgres(ctx context.Context, sqlDB *sql.DB) error {
	return migrations.Up(ctx, sqlDB)
}

func gormLogger(s Settings) logger.Interface {
	if s.LogLevel == "debug" || s.LogLevel == "trace" {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Warn)
}
