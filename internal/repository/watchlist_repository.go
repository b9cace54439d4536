package repository

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

var ErrNotInWatchlist = errors.New("movie not found in watchlist")

type WatchlistRepository interface {
	Add(ctx context.Context, userID string, movieID int64) error
	Remove(ctx context.Context, userID string, movieID int64) error
	List(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) Add(ctx context.Context, userID string, movieID int64) error {
	entry := &models.WatchlistEntry{
		UserID:  userID,
		MovieID: movieID,
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to watchlist: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Remove(ctx context.Context, userID string, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.WatchlistEntry{})
	if result.Error != nil {
		return fmt.Errorf("remove from watchlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotInWatchlist
	}
	return nil
}

func (r *watchlistRepository) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}

func (r *watchlistRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
