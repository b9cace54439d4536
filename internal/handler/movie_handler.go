package handler

import (
	"strconv"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movies    service.MovieService
	recs      service.RecommendationService
	responder *responder
}

func NewMovieHandler(movies service.MovieService, recs service.RecommendationService, r *responder) *MovieHandler {
	return &MovieHandler{movies: movies, recs: recs, responder: r}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/top-rated", h.TopRated)
	rg.GET("/new-releases", h.NewReleases)
	rg.GET("/genre/:name", h.ByGenre)
	rg.GET("/recommendations", middleware.RequireAuth(authService), h.Recommendations)
	rg.GET("/:movie_id", h.Get)

	rg.POST("", middleware.RequireAuth(authService), h.Create)
	rg.PUT("/:movie_id", middleware.RequireAuth(authService), h.Update)
	rg.DELETE("/:movie_id", middleware.RequireAuth(authService), h.Delete)
}

// List handles GET /api/movies with the full filter/sort/pagination contract.
func (h *MovieHandler) List(c *gin.Context) {
	filter := repository.MovieFilter{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 8),
		Search: c.Query("search"),
		Year:   queryInt(c, "year", 0),
		Genre:  c.Query("genre"),
		Sort:   c.DefaultQuery("sort", "title-asc"),
	}
	if raw := c.Query("minRating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = v
		}
	}

	resp, err := h.movies.List(c.Request.Context(), filter)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	resp, err := h.movies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	resp, err := h.movies.Create(c.Request.Context(), in)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.created(c, resp)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	resp, err := h.movies.Update(c.Request.Context(), id, in)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := movieIDParam(c, h.responder)
	if !ok {
		return
	}

	if err := h.movies.Delete(c.Request.Context(), id); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Movie deleted successfully")
}

func (h *MovieHandler) TopRated(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	resp, err := h.movies.TopRated(c.Request.Context(), limit)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) NewReleases(c *gin.Context) {
	filter := repository.MovieFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 8),
		Sort:  c.DefaultQuery("sort", "year-desc"),
	}
	resp, err := h.movies.NewReleases(c.Request.Context(), filter)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) ByGenre(c *gin.Context) {
	name := c.Param("name")
	resp, err := h.movies.ByGenre(c.Request.Context(), name, queryInt(c, "page", 1), queryInt(c, "limit", 8))
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

// Search requires a non-empty q; a missing query is the client's fault.
func (h *MovieHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.responder.badRequest(c, "Search query is required")
		return
	}

	resp, err := h.movies.Search(c.Request.Context(), query, queryInt(c, "page", 1), queryInt(c, "limit", 8))
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func (h *MovieHandler) Recommendations(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	resp, err := h.recs.ForUser(c.Request.Context(), userID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, resp)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func movieIDParam(c *gin.Context, r *responder) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		r.badRequest(c, "Invalid movie ID")
		return 0, false
	}
	return id, true
}
