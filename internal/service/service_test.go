package service

import (
	"testing"
	"time"

	"moviehub/internal/database"
	"moviehub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Service tests run against the real repositories on an in-memory sqlite
// database, with the cache left nil (a nil *cache.Cache is a no-op).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMovie(t *testing.T, db *gorm.DB, title string, year int, genres ...string) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: title}
	if year > 0 {
		release := time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
		movie.ReleaseDate = &release
	}
	require.NoError(t, db.Create(movie).Error)

	for _, name := range genres {
		var genre models.Genre
		require.NoError(t, db.Where(models.Genre{Name: name}).FirstOrCreate(&genre).Error)
		require.NoError(t, db.Model(movie).Association("Genres").Append(&genre))
	}
	return movie
}

func seedRating(t *testing.T, db *gorm.DB, userID string, movieID int64, value float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
	}).Error)
}
