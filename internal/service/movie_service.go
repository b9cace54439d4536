package service

import (
	"context"
	"errors"

	"moviehub/internal/apperr"
	"moviehub/internal/cache"
	"moviehub/internal/dto"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var ErrMovieNotFound = apperr.NotFound("Movie not found")

const topRatedCacheKey = "movies:top-rated"

type MovieService interface {
	List(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MovieDetailResponse, error)
	Create(ctx context.Context, in dto.CreateMovieDTO) (*dto.MovieDetailResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateMovieDTO) (*dto.MovieDetailResponse, error)
	Delete(ctx context.Context, id int64) error
	TopRated(ctx context.Context, limit int) ([]dto.MovieResponse, error)
	NewReleases(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error)
	ByGenre(ctx context.Context, name string, page, limit int) (*dto.PaginatedMoviesResponse, error)
	Search(ctx context.Context, query string, page, limit int) (*dto.PaginatedMoviesResponse, error)
}

type movieService struct {
	movieRepo *repository.MovieRepo
	genreRepo *repository.GenreRepo
	cache     *cache.Cache
}

func NewMovieService(movieRepo *repository.MovieRepo, genreRepo *repository.GenreRepo, c *cache.Cache) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
		cache:     c,
	}
}

func (s *movieService) List(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 8
	}
	list, total, err := s.movieRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := dto.FromMovieList(list, filter.Page, filter.Limit, total)
	return &resp, nil
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	avg, count, err := s.movieRepo.GetStats(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromMovieDetail(movie, avg, count)
	return &resp, nil
}

func (s *movieService) Create(ctx context.Context, in dto.CreateMovieDTO) (*dto.MovieDetailResponse, error) {
	movie := in.ToModel()
	if err := s.movieRepo.Create(ctx, &movie); err != nil {
		return nil, err
	}
	if len(in.GenreIDs) > 0 {
		if err := s.movieRepo.ReplaceGenres(ctx, movie.ID, in.GenreIDs); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, movie.ID)
}

func (s *movieService) Update(ctx context.Context, id int64, in dto.UpdateMovieDTO) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	in.ApplyTo(movie)
	if err := s.movieRepo.Update(ctx, id, movie); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.movieRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	return s.movieRepo.Delete(ctx, id)
}

// TopRated serves from the redis cache when warm; the underlying query only
// runs on a miss.
func (s *movieService) TopRated(ctx context.Context, limit int) ([]dto.MovieResponse, error) {
	if limit < 1 {
		limit = 10
	}

	var cached []dto.MovieResponse
	if limit == 10 && s.cache.GetJSON(ctx, topRatedCacheKey, &cached) {
		return cached, nil
	}

	list, err := s.movieRepo.TopRated(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMovieWithStats(m))
	}

	if limit == 10 {
		s.cache.SetJSON(ctx, topRatedCacheKey, resp)
	}
	return resp, nil
}

func (s *movieService) NewReleases(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 8
	}
	list, total, err := s.movieRepo.NewReleases(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := dto.FromMovieList(list, filter.Page, filter.Limit, total)
	return &resp, nil
}

func (s *movieService) ByGenre(ctx context.Context, name string, page, limit int) (*dto.PaginatedMoviesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}
	list, total, err := s.movieRepo.ByGenreName(ctx, name, page, limit)
	if err != nil {
		return nil, err
	}
	resp := dto.FromMovieList(list, page, limit, total)
	return &resp, nil
}

func (s *movieService) Search(ctx context.Context, query string, page, limit int) (*dto.PaginatedMoviesResponse, error) {
	if query == "" {
		return nil, apperr.BadRequest("Search query is required")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}
	list, total, err := s.movieRepo.Search(ctx, query, page, limit)
	if err != nil {
		return nil, err
	}
	resp := dto.FromMovieList(list, page, limit, total)
	return &resp, nil
}
