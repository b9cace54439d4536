package handler

import (
	"strconv"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlists service.WatchlistService
	responder  *responder
}

func NewWatchlistHandler(watchlists service.WatchlistService, r *responder) *WatchlistHandler {
	return &WatchlistHandler{watchlists: watchlists, responder: r}
}

// RegisterRoutes registers watchlist routes; everything requires auth.
func (h *WatchlistHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.Use(middleware.RequireAuth(authService))
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.DELETE("/:movie_id", h.Remove)
}

// Add puts a movie on the caller's watchlist.
// POST /api/watchlists
func (h *WatchlistHandler) Add(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	var in dto.AddToWatchlistDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	if err := h.watchlists.Add(c.Request.Context(), userID, in.MovieID); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Movie added to watchlist")
}

// Remove takes a movie off the caller's watchlist.
// DELETE /api/watchlists/:movie_id
func (h *WatchlistHandler) Remove(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		h.responder.badRequest(c, "Invalid movie ID")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	if err := h.watchlists.Remove(c.Request.Context(), userID, movieID); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Movie removed from watchlist")
}

// List returns the caller's watchlist, newest first.
// GET /api/watchlists
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	entries, err := h.watchlists.List(c.Request.Context(), userID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, entries)
}
