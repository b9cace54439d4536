package dto

import (
	"time"

	"moviehub/internal/models"
)

type AddToWatchlistDTO struct {
	MovieID int64 `json:"movie_id" binding:"required"`
}

type WatchlistEntryResponse struct {
	MovieID     int64      `json:"movie_id"`
	Title       string     `json:"title"`
	PosterURL   *string    `json:"poster_url,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AvgRating   float64    `json:"avg_rating"`
	RatingCount int64      `json:"rating_count"`
	AddedAt     time.Time  `json:"added_at"`
}

func FromModelToWatchlistResponse(entry *models.WatchlistEntry, avgRating float64, ratingCount int64) *WatchlistEntryResponse {
	return &WatchlistEntryResponse{
		MovieID:     entry.MovieID,
		Title:       entry.Movie.Title,
		PosterURL:   entry.Movie.PosterURL,
		ReleaseDate: entry.Movie.ReleaseDate,
		AvgRating:   RoundRating(avgRating),
		RatingCount: ratingCount,
		AddedAt:     entry.AddedAt,
	}
}
