package handler

import (
	"strconv"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews   service.ReviewService
	responder *responder
}

func NewReviewHandler(reviews service.ReviewService, r *responder) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, responder: r}
}

// RegisterMovieRoutes nests creation/listing under /api/movies/:movie_id/reviews
func (h *ReviewHandler) RegisterMovieRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	reviews := rg.Group("/:movie_id/reviews")
	{
		reviews.GET("", h.ListForMovie)
		reviews.POST("", middleware.RequireAuth(authService), h.Create)
	}
}

// RegisterRoutes handles edits by review id under /api/reviews
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.PUT("/:review_id", middleware.RequireAuth(authService), h.Update)
	rg.DELETE("/:review_id", middleware.RequireAuth(authService), h.Delete)
}

// Create posts a review; a second review for the same movie is rejected.
// POST /api/movies/:movie_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	review, err := h.reviews.CreateReview(c.Request.Context(), userID, movieID, in)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.created(c, review)
}

// Update edits an owned review.
// PUT /api/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := reviewIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	var in dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	review, err := h.reviews.UpdateReview(c.Request.Context(), userID, reviewID, in)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, review)
}

// Delete removes an owned review.
// DELETE /api/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := reviewIDParam(c, h.responder)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Review deleted successfully")
}

// ListForMovie retrieves a movie's reviews, newest first.
// GET /api/movies/:movie_id/reviews?page=1&limit=20
func (h *ReviewHandler) ListForMovie(c *gin.Context) {
	movieID, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	resp, err := h.reviews.GetMovieReviews(c.Request.Context(), movieID, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func reviewIDParam(c *gin.Context, r *responder) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		r.badRequest(c, "Invalid review ID")
		return 0, false
	}
	return id, true
}
