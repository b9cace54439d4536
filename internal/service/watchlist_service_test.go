package service

import (
	"context"
	"testing"

	"moviehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWatchlistService(t *testing.T) (WatchlistService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewWatchlistService(repository.NewWatchlistRepository(db), repository.NewMovieRepo(db))
	return svc, db
}

func TestWatchlistAdd_DuplicateRejected(t *testing.T) {
	svc, db := newWatchlistService(t)
	user := seedUser(t, db, "viewer")
	movie := seedMovie(t, db, "Movie", 2000)

	require.NoError(t, svc.Add(context.Background(), user.ID, movie.ID))
	err := svc.Add(context.Background(), user.ID, movie.ID)
	assert.ErrorIs(t, err, ErrAlreadyInWatchlist)
}

func TestWatchlistAdd_UnknownMovie(t *testing.T) {
	svc, db := newWatchlistService(t)
	user := seedUser(t, db, "viewer")

	err := svc.Add(context.Background(), user.ID, 999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestWatchlistRemove_MissingEntry(t *testing.T) {
	svc, db := newWatchlistService(t)
	user := seedUser(t, db, "viewer")
	movie := seedMovie(t, db, "Movie", 2000)

	err := svc.Remove(context.Background(), user.ID, movie.ID)
	assert.ErrorIs(t, err, ErrWatchlistNotFound)
}

func TestWatchlistList_AnnotatesRatingAggregates(t *testing.T) {
	svc, db := newWatchlistService(t)
	user := seedUser(t, db, "viewer")
	rater := seedUser(t, db, "rater")
	movie := seedMovie(t, db, "Movie", 2000)
	seedRating(t, db, rater.ID, movie.ID, 8.0)

	require.NoError(t, svc.Add(context.Background(), user.ID, movie.ID))

	entries, err := svc.List(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Movie", entries[0].Title)
	assert.InDelta(t, 8.0, entries[0].AvgRating, 0.001)
	assert.Equal(t, int64(1), entries[0].RatingCount)
}
