package service

import (
	"context"
	"net/http"
	"testing"

	"moviehub/internal/apperr"
	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(t *testing.T) (ReviewService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewMovieRepo(db))
	return svc, db
}

func TestCreateReview_SecondReviewRejected(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "critic")
	movie := seedMovie(t, db, "Movie", 2000)

	in := dto.CreateReviewDTO{Title: "Great", Content: "Loved it"}
	_, err := svc.CreateReview(context.Background(), user.ID, movie.ID, in)
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), user.ID, movie.ID, in)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.From(err).Status)
	assert.Equal(t, "You have already reviewed this movie", apperr.From(err).Message)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReview_UnknownMovie(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "critic")

	_, err := svc.CreateReview(context.Background(), user.ID, 999, dto.CreateReviewDTO{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCreateReview_DifferentUsersCanReviewSameMovie(t *testing.T) {
	svc, db := newReviewService(t)
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")
	movie := seedMovie(t, db, "Movie", 2000)

	_, err := svc.CreateReview(context.Background(), first.ID, movie.ID, dto.CreateReviewDTO{Title: "a", Content: "b"})
	require.NoError(t, err)
	_, err = svc.CreateReview(context.Background(), second.ID, movie.ID, dto.CreateReviewDTO{Title: "c", Content: "d"})
	require.NoError(t, err)
}

func TestUpdateReview_OnlyOwnerMayEdit(t *testing.T) {
	svc, db := newReviewService(t)
	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")
	movie := seedMovie(t, db, "Movie", 2000)

	created, err := svc.CreateReview(context.Background(), owner.ID, movie.ID, dto.CreateReviewDTO{Title: "Mine", Content: "Original"})
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = svc.UpdateReview(context.Background(), intruder.ID, created.ID, dto.UpdateReviewDTO{Title: &newTitle})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperr.From(err).Status)

	updated, err := svc.UpdateReview(context.Background(), owner.ID, created.ID, dto.UpdateReviewDTO{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Title)
	assert.Equal(t, "Original", updated.Content)
}

func TestDeleteReview_OnlyOwnerMayDelete(t *testing.T) {
	svc, db := newReviewService(t)
	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")
	movie := seedMovie(t, db, "Movie", 2000)

	created, err := svc.CreateReview(context.Background(), owner.ID, movie.ID, dto.CreateReviewDTO{Title: "Mine", Content: "Text"})
	require.NoError(t, err)

	err = svc.DeleteReview(context.Background(), intruder.ID, created.ID)
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	require.NoError(t, svc.DeleteReview(context.Background(), owner.ID, created.ID))

	err = svc.DeleteReview(context.Background(), owner.ID, created.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestGetMovieReviews_Paginated(t *testing.T) {
	svc, db := newReviewService(t)
	movie := seedMovie(t, db, "Movie", 2000)
	for _, name := range []string{"a", "b", "c"} {
		user := seedUser(t, db, name)
		_, err := svc.CreateReview(context.Background(), user.ID, movie.ID, dto.CreateReviewDTO{Title: name, Content: "text"})
		require.NoError(t, err)
	}

	resp, err := svc.GetMovieReviews(context.Background(), movie.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, int64(2), resp.Pagination.Pages)
}
