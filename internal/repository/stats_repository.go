package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// MovieScalars are the catalog-wide scalar rollups for the stats overview.
// Runtime stays in minutes here; presentation converts to hours.
type MovieScalars struct {
	TotalMovies       int64   `json:"total_movies"`
	AvgRuntimeMinutes float64 `json:"avg_runtime_minutes"`
	SumRuntimeMinutes int64   `json:"sum_runtime_minutes"`
	EarliestYear      *int    `json:"earliest_year"`
	LatestYear        *int    `json:"latest_year"`
	AvgRating         float64 `json:"avg_rating"`
}

// RatingBucket is one of the ten fixed histogram ranges.
type RatingBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DecadeRuntime struct {
	Decade     int     `json:"decade"`
	AvgRuntime float64 `json:"avg_runtime"`
}

// ratingBucketLabels, highest range first. The last range is closed ([9,10])
// so a perfect 10 lands in it.
var ratingBucketLabels = []string{
	"9-10", "8-8.9", "7-7.9", "6-6.9", "5-5.9",
	"4-4.9", "3-3.9", "2-2.9", "1-1.9", "0-0.9",
}

// StatsRepository holds the rollup queries that need raw aggregate SQL
// (postgres dialect for the year/month extractions).
type StatsRepository interface {
	MovieScalars(ctx context.Context) (*MovieScalars, error)
	GenreDistribution(ctx context.Context) ([]GenreCount, error)
	RatingDistribution(ctx context.Context, userID string) ([]RatingBucket, error)
	RuntimeByDecade(ctx context.Context) ([]DecadeRuntime, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) MovieScalars(ctx context.Context) (*MovieScalars, error) {
	var row MovieScalars
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM movies) AS total_movies,
			(SELECT COALESCE(AVG(runtime_minutes), 0) FROM movies WHERE runtime_minutes IS NOT NULL) AS avg_runtime_minutes,
			(SELECT COALESCE(SUM(runtime_minutes), 0) FROM movies WHERE runtime_minutes IS NOT NULL) AS sum_runtime_minutes,
			(SELECT CAST(EXTRACT(YEAR FROM MIN(release_date)) AS int) FROM movies WHERE release_date IS NOT NULL) AS earliest_year,
			(SELECT CAST(EXTRACT(YEAR FROM MAX(release_date)) AS int) FROM movies WHERE release_date IS NOT NULL) AS latest_year,
			(SELECT COALESCE(AVG(value), 0) FROM ratings) AS avg_rating`).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("movie scalars: %w", err)
	}
	return &row, nil
}

// GenreDistribution counts movies per genre. LEFT JOIN so genres with no
// movies still show up with a zero count.
func (r *statsRepository) GenreDistribution(ctx context.Context) ([]GenreCount, error) {
	var rows []GenreCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT g.id AS genre_id, g.name AS name, COUNT(mg.movie_id) AS count
		FROM genres g
		LEFT JOIN movie_genres mg ON mg.genre_id = g.id
		GROUP BY g.id, g.name
		ORDER BY count DESC, g.name ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("genre distribution: %w", err)
	}
	return rows, nil
}

// RatingDistribution buckets ratings into the ten fixed ranges, highest
// first, with empty buckets filled in. An empty userID means catalog-wide.
func (r *statsRepository) RatingDistribution(ctx context.Context, userID string) ([]RatingBucket, error) {
	query := r.db.WithContext(ctx).
		Table("ratings").
		Select("LEAST(CAST(FLOOR(value) AS int), 9) AS bucket, COUNT(*) AS count").
		Group("bucket")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var raw []struct {
		Bucket int
		Count  int64
	}
	if err := query.Scan(&raw).Error; err != nil {
		return nil, fmt.Errorf("rating distribution: %w", err)
	}

	counts := make(map[int]int64, len(raw))
	for _, row := range raw {
		counts[row.Bucket] = row.Count
	}

	buckets := make([]RatingBucket, 0, len(ratingBucketLabels))
	for i, label := range ratingBucketLabels {
		buckets = append(buckets, RatingBucket{Label: label, Count: counts[9-i]})
	}
	return buckets, nil
}

// RuntimeByDecade averages runtime per release decade (floor(year/10)*10).
func (r *statsRepository) RuntimeByDecade(ctx context.Context) ([]DecadeRuntime, error) {
	var rows []DecadeRuntime
	err := r.db.WithContext(ctx).Raw(`
		SELECT CAST(FLOOR(EXTRACT(YEAR FROM release_date) / 10) * 10 AS int) AS decade,
		       AVG(runtime_minutes) AS avg_runtime
		FROM movies
		WHERE release_date IS NOT NULL AND runtime_minutes IS NOT NULL
		GROUP BY decade
		ORDER BY decade ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("runtime by decade: %w", err)
	}
	return rows, nil
}
