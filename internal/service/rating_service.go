package service

import (
	"context"
	"errors"

	"moviehub/internal/apperr"
	"moviehub/internal/cache"
	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var ErrRatingNotFound = apperr.NotFound("Rating not found")

type RatingService interface {
	CreateOrUpdateRating(ctx context.Context, userID string, movieID int64, value float64) (*dto.UserRatingResponse, error)
	DeleteRating(ctx context.Context, userID string, movieID int64) error
	GetUserRating(ctx context.Context, userID string, movieID int64) (*dto.UserRatingResponse, error)
	GetMovieRatings(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedRatingsResponse, error)
	GetMovieAverageRating(ctx context.Context, movieID int64) (float64, int64, error)
}

type ratingService struct {
	ratingRepo   repository.RatingRepository
	movieRepo    *repository.MovieRepo
	activityRepo repository.ActivityRepository
	cache        *cache.Cache
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	movieRepo *repository.MovieRepo,
	activityRepo repository.ActivityRepository,
	c *cache.Cache,
) RatingService {
	return &ratingService{
		ratingRepo:   ratingRepo,
		movieRepo:    movieRepo,
		activityRepo: activityRepo,
		cache:        c,
	}
}

// CreateOrUpdateRating upserts the user's rating for a movie. The range
// check happens before any write; a second rating for the same pair updates
// the existing row in place.
func (s *ratingService) CreateOrUpdateRating(ctx context.Context, userID string, movieID int64, value float64) (*dto.UserRatingResponse, error) {
	if value < 0 || value > 10 {
		return nil, apperr.BadRequest("Rating must be between 0 and 10")
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.Rating
	action := models.ActivityRatingCreated

	if existing != nil {
		existing.Value = value
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		rating = existing
		action = models.ActivityRatingUpdated
	} else {
		rating = &models.Rating{
			UserID:  userID,
			MovieID: movieID,
			Value:   value,
		}
		if err := s.ratingRepo.Create(ctx, rating); err != nil {
			return nil, err
		}
	}

	s.logActivity(ctx, userID, action, movieID)
	s.cache.Invalidate(ctx, topRatedCacheKey, overviewCacheKey)

	return &dto.UserRatingResponse{
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID string, movieID int64) error {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	if err := s.ratingRepo.Delete(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return ErrRatingNotFound
		}
		return err
	}

	s.logActivity(ctx, userID, models.ActivityRatingDeleted, movieID)
	s.cache.Invalidate(ctx, topRatedCacheKey, overviewCacheKey)
	return nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID string, movieID int64) (*dto.UserRatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	return &dto.UserRatingResponse{
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}, nil
}

func (s *ratingService) GetMovieRatings(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedRatingsResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetByMovie(ctx, movieID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}

	return dto.NewPaginatedRatingsResponse(responses, page, pageSize, total), nil
}

func (s *ratingService) GetMovieAverageRating(ctx context.Context, movieID int64) (float64, int64, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrMovieNotFound
		}
		return 0, 0, err
	}
	return s.movieRepo.GetStats(ctx, movieID)
}

// logActivity is best effort: a failed log write never fails the rating
// request itself.
func (s *ratingService) logActivity(ctx context.Context, userID, action string, movieID int64) {
	id := movieID
	_ = s.activityRepo.Log(ctx, &models.ActivityLog{
		UserID:  userID,
		Action:  action,
		MovieID: &id,
	})
}
