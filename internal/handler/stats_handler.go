package handler

import (
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats     service.StatsService
	responder *responder
}

func NewStatsHandler(stats service.StatsService, r *responder) *StatsHandler {
	return &StatsHandler{stats: stats, responder: r}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.GET("/overview", h.Overview)
	rg.GET("/distributions", h.Distributions)
	rg.GET("/me", middleware.RequireAuth(authService), h.UserActivity)
}

// Overview returns the catalog-wide scalar rollups.
// GET /api/stats/overview
func (h *StatsHandler) Overview(c *gin.Context) {
	resp, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

// Distributions returns the genre, rating and runtime-by-decade rollups.
// GET /api/stats/distributions
func (h *StatsHandler) Distributions(c *gin.Context) {
	resp, err := h.stats.Distributions(c.Request.Context())
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

// UserActivity returns the caller's rating distribution, top genres and
// trailing 12-month activity counts.
// GET /api/stats/me
func (h *StatsHandler) UserActivity(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	resp, err := h.stats.UserActivity(c.Request.Context(), userID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}
