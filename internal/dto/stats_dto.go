package dto

import "moviehub/internal/repository"

// OverviewResponse is the catalog-wide scalar rollup. Runtime is reported in
// hours, averages at one decimal.
type OverviewResponse struct {
	TotalActiveUsers int64   `json:"total_active_users"`
	TotalMovies      int64   `json:"total_movies"`
	TotalGenres      int64   `json:"total_genres"`
	AvgRuntimeHours  float64 `json:"avg_runtime_hours"`
	SumRuntimeHours  float64 `json:"sum_runtime_hours"`
	EarliestYear     *int    `json:"earliest_year"`
	LatestYear       *int    `json:"latest_year"`
	AvgRating        float64 `json:"avg_rating"`
	TotalRatings     int64   `json:"total_ratings"`
	TotalReviews     int64   `json:"total_reviews"`
}

type DistributionsResponse struct {
	Genres          []repository.GenreCount    `json:"genres"`
	Ratings         []repository.RatingBucket  `json:"ratings"`
	RuntimeByDecade []repository.DecadeRuntime `json:"runtime_by_decade"`
}

type UserActivityResponse struct {
	Ratings       []repository.RatingBucket    `json:"ratings"`
	TopGenres     []repository.GenreCount      `json:"top_genres"`
	MonthlyCounts []repository.MonthlyActivity `json:"monthly_counts"`
}
