package database

import (
	"fmt"

	"github.com/linkmoa/core/internal/config"
	"github.com/linkmoa/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a database connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	db, err := openDB(cfg, resolveLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return db, nil
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}

func openDB(cfg *config.AppConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = mysql.New(mysql.Config{
			DSN:               cfg.DSN,
			DefaultStringSize: 191,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.LinkModel{},
		&models.ChatMessageModel{},
	); err != nil {
		return err
	}

	// MySQL TEXT tops out at 64KB; extracted content is capped at 100k chars.
	if db.Dialector.Name() == "mysql" {
		if err := db.Exec("ALTER TABLE `links` MODIFY COLUMN `content` LONGTEXT NULL").Error; err != nil {
			return err
		}
	}

	return nil
}
