// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/yoockh/portfolio/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// SeedProfile creates an account and its profile with the given file keys.
func SeedProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()
	acc := &models.Account{Username: username, Email: username + "@example.com", IsStaff: true}
	if err := db.Create(acc).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	p := &models.Profile{
		AccountID:   acc.ID,
		Designation: "Backend Engineer",
		Description: "I build **services**.",
		AboutMe:     "Long about text.",
		Experience:  "5+ Years",
		Location:    "Jakarta",
		GitHub:      "https://github.com/" + username,
		Image1:      "profile_images/" + username + "-hero.jpg",
		Image2:      "profile_images/" + username + "-about.jpg",
		CV:          "cvs/" + username + ".pdf",
	}
	if err := db.Omit("Account").Create(p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}
