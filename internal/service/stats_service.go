package service

import (
	"context"
	"time"

	"moviehub/internal/cache"
	"moviehub/internal/dto"
	"moviehub/internal/repository"
)

const overviewCacheKey = "stats:overview"

type StatsService interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	Distributions(ctx context.Context) (*dto.DistributionsResponse, error)
	UserActivity(ctx context.Context, userID string) (*dto.UserActivityResponse, error)
}

type statsService struct {
	statsRepo    repository.StatsRepository
	userRepo     repository.UserRepository
	genreRepo    *repository.GenreRepo
	ratingRepo   repository.RatingRepository
	reviewRepo   repository.ReviewRepository
	activityRepo repository.ActivityRepository
	cache        *cache.Cache
}

func NewStatsService(
	statsRepo repository.StatsRepository,
	userRepo repository.UserRepository,
	genreRepo *repository.GenreRepo,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	activityRepo repository.ActivityRepository,
	c *cache.Cache,
) StatsService {
	return &statsService{
		statsRepo:    statsRepo,
		userRepo:     userRepo,
		genreRepo:    genreRepo,
		ratingRepo:   ratingRepo,
		reviewRepo:   reviewRepo,
		activityRepo: activityRepo,
		cache:        c,
	}
}

// Overview rolls the catalog-wide scalars into one response. Sequential
// queries, no partial results: the first failure aborts the response.
func (s *statsService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	var cached dto.OverviewResponse
	if s.cache.GetJSON(ctx, overviewCacheKey, &cached) {
		return &cached, nil
	}

	scalars, err := s.statsRepo.MovieScalars(ctx)
	if err != nil {
		return nil, err
	}

	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalGenres, err := s.genreRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalRatings, err := s.ratingRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalReviews, err := s.reviewRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.OverviewResponse{
		TotalActiveUsers: activeUsers,
		TotalMovies:      scalars.TotalMovies,
		TotalGenres:      totalGenres,
		AvgRuntimeHours:  dto.RoundRating(scalars.AvgRuntimeMinutes / 60),
		SumRuntimeHours:  dto.RoundRating(float64(scalars.SumRuntimeMinutes) / 60),
		EarliestYear:     scalars.EarliestYear,
		LatestYear:       scalars.LatestYear,
		AvgRating:        dto.RoundRating(scalars.AvgRating),
		TotalRatings:     totalRatings,
		TotalReviews:     totalReviews,
	}

	s.cache.SetJSON(ctx, overviewCacheKey, resp)
	return resp, nil
}

func (s *statsService) Distributions(ctx context.Context) (*dto.DistributionsResponse, error) {
	genres, err := s.statsRepo.GenreDistribution(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := s.statsRepo.RatingDistribution(ctx, "")
	if err != nil {
		return nil, err
	}

	decades, err := s.statsRepo.RuntimeByDecade(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DistributionsResponse{
		Genres:          genres,
		Ratings:         ratings,
		RuntimeByDecade: decades,
	}, nil
}

// UserActivity scopes the rating histogram to one user and adds their top
// genres and the trailing 12 months of activity-log counts.
func (s *statsService) UserActivity(ctx context.Context, userID string) (*dto.UserActivityResponse, error) {
	ratings, err := s.statsRepo.RatingDistribution(ctx, userID)
	if err != nil {
		return nil, err
	}

	topGenres, err := s.genreRepo.TopGenresForUser(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(-1, 0, 0)
	monthly, err := s.activityRepo.MonthlyCounts(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return &dto.UserActivityResponse{
		Ratings:       ratings,
		TopGenres:     topGenres,
		MonthlyCounts: monthly,
	}, nil
}
