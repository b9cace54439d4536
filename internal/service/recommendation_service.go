package service

import (
	"context"

	"moviehub/internal/dto"
	"moviehub/internal/repository"
)

// Thresholds for the content-based heuristic. The minimum "highly rated"
// value of 4 is on the 0-10 scale, carried over from the original behavior.
const (
	recommendSeedLimit   = 10
	recommendMinValue    = 4.0
	recommendGenreLimit  = 3
	recommendResultLimit = 10
)

type RecommendationService interface {
	ForUser(ctx context.Context, userID string) ([]dto.MovieResponse, error)
}

type recommendationService struct {
	ratingRepo repository.RatingRepository
	genreRepo  *repository.GenreRepo
	movieRepo  *repository.MovieRepo
	movies     MovieService
}

func NewRecommendationService(
	ratingRepo repository.RatingRepository,
	genreRepo *repository.GenreRepo,
	movieRepo *repository.MovieRepo,
	movies MovieService,
) RecommendationService {
	return &recommendationService{
		ratingRepo: ratingRepo,
		genreRepo:  genreRepo,
		movieRepo:  movieRepo,
		movies:     movies,
	}
}

// ForUser derives the user's preferred genres from their highest ratings and
// proposes unseen movies from those genres. Users with no qualifying ratings
// (and users whose rated movies carry no genres) get the global top-rated
// list instead. Any storage error aborts the whole response.
func (s *recommendationService) ForUser(ctx context.Context, userID string) ([]dto.MovieResponse, error) {
	seeds, err := s.ratingRepo.TopRatedByUser(ctx, userID, recommendMinValue, recommendSeedLimit)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return s.movies.TopRated(ctx, recommendResultLimit)
	}

	movieIDs := make([]int64, 0, len(seeds))
	for _, r := range seeds {
		movieIDs = append(movieIDs, r.MovieID)
	}

	genres, err := s.genreRepo.TopGenresForMovies(ctx, movieIDs, recommendGenreLimit)
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return s.movies.TopRated(ctx, recommendResultLimit)
	}

	genreIDs := make([]int64, 0, len(genres))
	for _, g := range genres {
		genreIDs = append(genreIDs, g.GenreID)
	}

	list, err := s.movieRepo.RecommendByGenres(ctx, genreIDs, userID, recommendResultLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMovieWithStats(m))
	}
	return resp, nil
}
