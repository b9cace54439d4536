package service

import (
	"context"
	"errors"

	"moviehub/internal/apperr"
	"moviehub/internal/dto"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyInWatchlist = apperr.BadRequest("Movie already in watchlist")
	ErrWatchlistNotFound  = apperr.NotFound("Movie not found in watchlist")
)

type WatchlistService interface {
	Add(ctx context.Context, userID string, movieID int64) error
	Remove(ctx context.Context, userID string, movieID int64) error
	List(ctx context.Context, userID string) ([]dto.WatchlistEntryResponse, error)
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	movieRepo     *repository.MovieRepo
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, movieRepo *repository.MovieRepo) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		movieRepo:     movieRepo,
	}
}

func (s *watchlistService) Add(ctx context.Context, userID string, movieID int64) error {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	exists, err := s.watchlistRepo.Exists(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInWatchlist
	}

	return s.watchlistRepo.Add(ctx, userID, movieID)
}

func (s *watchlistService) Remove(ctx context.Context, userID string, movieID int64) error {
	if err := s.watchlistRepo.Remove(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrNotInWatchlist) {
			return ErrWatchlistNotFound
		}
		return err
	}
	return nil
}

// List returns the user's watchlist, newest first, each entry annotated
// with the movie's read-time rating aggregates.
func (s *watchlistService) List(ctx context.Context, userID string) ([]dto.WatchlistEntryResponse, error) {
	entries, err := s.watchlistRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchlistEntryResponse, 0, len(entries))
	for i := range entries {
		avg, count, err := s.movieRepo.GetStats(ctx, entries[i].MovieID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *dto.FromModelToWatchlistResponse(&entries[i], avg, count))
	}
	return responses, nil
}
