package database

import (
	"strings"

	"github.com/kanbanhq/kanban-api/internal/config"
	"github.com/kanbanhq/kanban-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
}

// Migrate creates the four tables if they do not exist. Safe to run on
// every startup.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Board{}, "Participants", &models.BoardParticipant{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Task{},
		&models.BoardParticipant{},
	)
}
