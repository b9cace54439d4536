package repository

import (
	"context"
	"errors"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID string, movieID int64) error
	GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error)
	GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Rating, int64, error)
	TopRatedByUser(ctx context.Context, userID string, minValue float64, limit int) ([]models.Rating, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func (r *ratingRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByMovie retrieves a movie's ratings with pagination, newest first.
func (r *ratingRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// TopRatedByUser returns the user's highest ratings at or above minValue,
// movie preloaded, feeding the genre-preference heuristic.
func (r *ratingRepository) TopRatedByUser(ctx context.Context, userID string, minValue float64, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND value >= ?", userID, minValue).
		Preload("Movie").
		Order("value DESC").
		Limit(limit).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&count).Error
	return count, err
}
