package config

import (
	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSQLite opens the file database used for local runs.
func InitSQLite(s Settings) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(s.SQLitePath+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger(s),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// MigrateSQLite creates or updates the schema from the models.
func MigrateSQLite(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
