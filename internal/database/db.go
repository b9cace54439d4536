package database

import (
	"fmt"
	"log/slog"

	"moviehub/internal/config"
	"moviehub/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// Migrate declares the full schema up front: plain tables, the movie_genres
// join table, and the cast/crew join entities with their own attributes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Genre{},
		&models.Movie{},
		&models.Person{},
		&models.CastMember{},
		&models.CrewMember{},
		&models.Rating{},
		&models.Review{},
		&models.WatchlistEntry{},
		&models.ActivityLog{},
	)
}
