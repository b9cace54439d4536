package repository

import (
	"context"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, reviewID int64) error
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Review, error)
	GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Review, int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, reviewID).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&review, reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByUserAndMovie backs the application-level one-review-per-movie check.
func (r *reviewRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByMovie(ctx context.Context, movieID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Review{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}
