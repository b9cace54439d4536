package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopGenresForMovies_RanksByFrequency(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepo(db)

	a := seedMovie(t, db, "A", 2000, "Action", "Thriller")
	b := seedMovie(t, db, "B", 2001, "Action")
	c := seedMovie(t, db, "C", 2002, "Action", "Drama")

	genres, err := repo.TopGenresForMovies(context.Background(), []int64{a.ID, b.ID, c.ID}, 2)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, int64(3), genres[0].Count)
}

func TestTopGenresForMovies_EmptyInput(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepo(db)

	genres, err := repo.TopGenresForMovies(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestTopGenresForUser_OnlyCountsRatedMovies(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepo(db)
	user := seedUser(t, db, "rater")

	rated := seedMovie(t, db, "Rated", 2000, "Horror")
	seedMovie(t, db, "Ignored", 2001, "Comedy")
	seedRating(t, db, user.ID, rated.ID, 8.0)

	genres, err := repo.TopGenresForUser(context.Background(), user.ID, 5)
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Horror", genres[0].Name)
}
