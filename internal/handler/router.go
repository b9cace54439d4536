package handler

import (
	"log/slog"

	"moviehub/internal/config"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs wired in.
type Services struct {
	Auth            service.AuthService
	Movies          service.MovieService
	Ratings         service.RatingService
	Reviews         service.ReviewService
	Watchlists      service.WatchlistService
	Users           service.UserService
	Stats           service.StatsService
	Recommendations service.RecommendationService
}

// NewRouter assembles the gin engine: recovery/logging, CORS, rate limiting,
// then every handler group under /api.
func NewRouter(cfg *config.Config, logger *slog.Logger, svcs Services) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSOrigins))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(limiter.Middleware())

	resp := newResponder(logger, cfg.IsDevelopment())

	r.GET("/healthz", func(c *gin.Context) {
		resp.message(c, "ok")
	})
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := r.Group("/api")

	movieHandler := NewMovieHandler(svcs.Movies, svcs.Recommendations, resp)
	ratingHandler := NewRatingHandler(svcs.Ratings, resp)
	reviewHandler := NewReviewHandler(svcs.Reviews, resp)
	watchlistHandler := NewWatchlistHandler(svcs.Watchlists, resp)
	statsHandler := NewStatsHandler(svcs.Stats, resp)
	userHandler := NewUserHandler(svcs.Auth, svcs.Users, resp)

	movies := api.Group("/movies")
	movieHandler.RegisterRoutes(movies, svcs.Auth)
	ratingHandler.RegisterRoutes(movies, svcs.Auth)
	reviewHandler.RegisterMovieRoutes(movies, svcs.Auth)

	reviewHandler.RegisterRoutes(api.Group("/reviews"), svcs.Auth)
	watchlistHandler.RegisterRoutes(api.Group("/watchlists"), svcs.Auth)
	statsHandler.RegisterRoutes(api.Group("/stats"), svcs.Auth)
	userHandler.RegisterRoutes(api.Group("/users"), svcs.Auth)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
