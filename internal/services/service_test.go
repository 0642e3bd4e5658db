package services

import (
	"path/filepath"
	"testing"

	"github.com/kanbanhq/kanban-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.SetupJoinTable(&models.Board{}, "Participants", &models.BoardParticipant{}); err != nil {
		t.Fatalf("join table: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Board{}, &models.Task{}, &models.BoardParticipant{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(v string) *string { return &v }
