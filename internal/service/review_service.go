package service

import (
	"context"
	"errors"

	"moviehub/internal/apperr"
	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = apperr.NotFound("Review not found")
	ErrAlreadyReviewed = apperr.BadRequest("You have already reviewed this movie")
	ErrNotReviewOwner  = apperr.Forbidden("You can only modify your own reviews")
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, movieID int64, in dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID string, reviewID int64, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, userID string, reviewID int64) error
	GetMovieReviews(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedReviewsResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  *repository.MovieRepo
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo *repository.MovieRepo) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
	}
}

// CreateReview enforces the one-review-per-movie rule at the application
// level: an existing (user, movie) review rejects the create and leaves the
// table untouched.
func (s *reviewService) CreateReview(ctx context.Context, userID string, movieID int64, in dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepo.GetByUserAndMovie(ctx, userID, movieID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID:           userID,
		MovieID:          movieID,
		Title:            in.Title,
		Content:          in.Content,
		ContainsSpoilers: in.ContainsSpoilers,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	created, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(created), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID string, reviewID int64, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}

	in.ApplyTo(review)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID string, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID {
		return ErrNotReviewOwner
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedReviewsResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByMovie(ctx, movieID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *dto.FromModelToReviewResponse(&reviews[i]))
	}

	return &dto.PaginatedReviewsResponse{
		Reviews:    responses,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}
