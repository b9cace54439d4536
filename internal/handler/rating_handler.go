package handler

import (
	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratings   service.RatingService
	responder *responder
}

func NewRatingHandler(ratings service.RatingService, r *responder) *RatingHandler {
	return &RatingHandler{ratings: ratings, responder: r}
}

// RegisterRoutes registers rating routes under /api/movies/:movie_id/ratings
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	ratings := rg.Group("/:movie_id/ratings")
	{
		ratings.GET("", h.List)
		ratings.GET("/average", h.GetAverage)

		ratings.POST("", middleware.RequireAuth(authService), h.CreateOrUpdate)
		ratings.GET("/me", middleware.RequireAuth(authService), h.GetUserRating)
		ratings.DELETE("", middleware.RequireAuth(authService), h.Delete)
	}
}

// CreateOrUpdate upserts the caller's rating for a movie.
// POST /api/movies/:movie_id/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.badRequest(c, "Rating must be between 0 and 10")
		return
	}

	rating, err := h.ratings.CreateOrUpdateRating(c.Request.Context(), userID, movieID, *req.Value)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, rating)
}

// GetUserRating retrieves the caller's rating for a movie.
// GET /api/movies/:movie_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	rating, err := h.ratings.GetUserRating(c.Request.Context(), userID, movieID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, rating)
}

// Delete removes the caller's rating for a movie.
// DELETE /api/movies/:movie_id/ratings
func (h *RatingHandler) Delete(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	if err := h.ratings.DeleteRating(c.Request.Context(), userID, movieID); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Rating deleted successfully")
}

// List retrieves a movie's ratings with pagination.
// GET /api/movies/:movie_id/ratings?page=1&limit=20
func (h *RatingHandler) List(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	resp, err := h.ratings.GetMovieRatings(c.Request.Context(), movieID, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

// GetAverage retrieves the average rating and count for a movie.
// GET /api/movies/:movie_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	avg, count, err := h.ratings.GetMovieAverageRating(c.Request.Context(), movieID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, gin.H{
		"avg_rating":   dto.RoundRating(avg),
		"rating_count": count,
	})
}
