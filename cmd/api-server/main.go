package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"moviehub/internal/cache"
	"moviehub/internal/config"
	"moviehub/internal/database"
	"moviehub/internal/handler"
	"moviehub/internal/repository"
	"moviehub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// The API keeps serving without redis; cached endpoints just go to the
	// database every time.
	store, err := cache.New(cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
		store = nil
	}
	defer store.Close()

	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	movieService := service.NewMovieService(movieRepo, genreRepo, store)
	ratingService := service.NewRatingService(ratingRepo, movieRepo, activityRepo, store)
	reviewService := service.NewReviewService(reviewRepo, movieRepo)
	watchlistService := service.NewWatchlistService(watchlistRepo, movieRepo)
	userService := service.NewUserService(userRepo, cfg.UploadDir, cfg.UploadBaseURL)
	statsService := service.NewStatsService(statsRepo, userRepo, genreRepo, ratingRepo, reviewRepo, activityRepo, store)
	recommendationService := service.NewRecommendationService(ratingRepo, genreRepo, movieRepo, movieService)

	router := handler.NewRouter(cfg, logger, handler.Services{
		Auth:            authService,
		Movies:          movieService,
		Ratings:         ratingService,
		Reviews:         reviewService,
		Watchlists:      watchlistService,
		Users:           userService,
		Stats:           statsService,
		Recommendations: recommendationService,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := router.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
