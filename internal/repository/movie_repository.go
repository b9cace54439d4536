package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// MovieWithStats is a movie row annotated with its read-time rating
// aggregates. The aggregates come from correlated subqueries and are never
// written back to the movies table.
type MovieWithStats struct {
	models.Movie
	AvgRating   float64 `json:"avg_rating" gorm:"column:avg_rating"`
	RatingCount int64   `json:"rating_count" gorm:"column:rating_count"`
}

// MovieFilter is the single place the listing contract lives: pagination,
// optional filters and the enumerated sort keys.
type MovieFilter struct {
	Page   int
	Limit  int
	Search string
	Year   int
	Genre  string
	Sort   string

	// MinRating is applied in memory to the already-paginated page, so a
	// filtered page may come back with fewer than Limit rows even when
	// later pages hold qualifying movies. Total then reflects the filtered
	// page, not a corrected catalog-wide count.
	MinRating float64
}

func (f *MovieFilter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 8
	}
}

var sortColumns = map[string]string{
	"title-asc":   "movies.title ASC",
	"title-desc":  "movies.title DESC",
	"year-asc":    "movies.release_date ASC",
	"year-desc":   "movies.release_date DESC",
	"rating-asc":  "avg_rating ASC",
	"rating-desc": "avg_rating DESC",
}

const (
	avgRatingSubquery   = "(SELECT COALESCE(AVG(r.value), 0) FROM ratings r WHERE r.movie_id = movies.id)"
	ratingCountSubquery = "(SELECT COUNT(*) FROM ratings r WHERE r.movie_id = movies.id)"
	statsSelect         = "movies.*, " + avgRatingSubquery + " AS avg_rating, " + ratingCountSubquery + " AS rating_count"
)

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// List applies the filter/sort/pagination contract in a single query, with
// per-movie rating aggregates computed by correlated subqueries. An unknown
// sort key falls back to title-asc.
func (r *MovieRepo) List(ctx context.Context, filter MovieFilter) ([]MovieWithStats, int64, error) {
	filter.normalize()

	base := r.db.WithContext(ctx).Model(&models.Movie{})
	base = applyFilters(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	order, ok := sortColumns[filter.Sort]
	if !ok {
		order = sortColumns["title-asc"]
	}

	var list []MovieWithStats
	offset := (filter.Page - 1) * filter.Limit
	if err := base.
		Select(statsSelect).
		Order(order).
		Limit(filter.Limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	if filter.MinRating > 0 {
		filtered := make([]MovieWithStats, 0, len(list))
		for _, m := range list {
			if m.AvgRating >= filter.MinRating {
				filtered = append(filtered, m)
			}
		}
		list = filtered
		total = int64(len(filtered))
	}

	return list, total, nil
}

func applyFilters(db *gorm.DB, filter MovieFilter) *gorm.DB {
	if filter.Search != "" {
		db = db.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Year > 0 {
		from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		db = db.Where("movies.release_date >= ? AND movies.release_date < ?", from, from.AddDate(1, 0, 0))
	}
	if filter.Genre != "" {
		db = db.Where(
			"EXISTS (SELECT 1 FROM movie_genres mg JOIN genres g ON g.id = mg.genre_id WHERE mg.movie_id = movies.id AND LOWER(g.name) LIKE ?)",
			"%"+strings.ToLower(filter.Genre)+"%",
		)
	}
	return db
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Cast", func(db *gorm.DB) *gorm.DB { return db.Order("cast_members.cast_order ASC") }).
		Preload("Cast.Person").
		Preload("Crew").
		Preload("Crew.Person").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetStats returns the read-time aggregates for a single movie.
func (r *MovieRepo) GetStats(ctx context.Context, id int64) (float64, int64, error) {
	var row struct {
		AvgRating   float64
		RatingCount int64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(value), 0) AS avg_rating, COUNT(*) AS rating_count").
		Where("movie_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("movie stats: %w", err)
	}
	return row.AvgRating, row.RatingCount, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Update(ctx context.Context, id int64, m *models.Movie) error {
	m.ID = id
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error; err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// TopRated returns movies carrying at least one rating, best average first,
// rating count as the tiebreak.
func (r *MovieRepo) TopRated(ctx context.Context, limit int) ([]MovieWithStats, error) {
	if limit < 1 {
		limit = 10
	}
	var list []MovieWithStats
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Select(statsSelect).
		Where(ratingCountSubquery + " > 0").
		Order("avg_rating DESC, rating_count DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("top rated movies: %w", err)
	}
	return list, nil
}

// NewReleases lists movies with a known release date, newest first by
// default but honoring the full sort contract.
func (r *MovieRepo) NewReleases(ctx context.Context, filter MovieFilter) ([]MovieWithStats, int64, error) {
	filter.normalize()
	if _, ok := sortColumns[filter.Sort]; !ok {
		filter.Sort = "year-desc"
	}

	base := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("movies.release_date IS NOT NULL")
	base = applyFilters(base, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count new releases: %w", err)
	}

	var list []MovieWithStats
	offset := (filter.Page - 1) * filter.Limit
	if err := base.
		Select(statsSelect).
		Order(sortColumns[filter.Sort]).
		Limit(filter.Limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list new releases: %w", err)
	}
	return list, total, nil
}

// ByGenreName matches the genre name exactly (unlike the listing filter,
// which is a substring match) and pages through title order.
func (r *MovieRepo) ByGenreName(ctx context.Context, name string, page, limit int) ([]MovieWithStats, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}

	base := r.db.WithContext(ctx).Model(&models.Movie{}).
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Joins("JOIN genres g ON g.id = mg.genre_id").
		Where("g.name = ?", name)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies by genre: %w", err)
	}

	var list []MovieWithStats
	if err := base.
		Select(statsSelect).
		Order("movies.title ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("movies by genre: %w", err)
	}
	return list, total, nil
}

// Search matches the query case-insensitively against title or overview.
func (r *MovieRepo) Search(ctx context.Context, query string, page, limit int) ([]MovieWithStats, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}

	pattern := "%" + strings.ToLower(query) + "%"
	base := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("LOWER(movies.title) LIKE ? OR LOWER(COALESCE(movies.overview, '')) LIKE ?", pattern, pattern)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}

	var list []MovieWithStats
	if err := base.
		Select(statsSelect).
		Order("movies.title ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search movies: %w", err)
	}
	return list, total, nil
}

// ReplaceGenres swaps the movie's genre set for the given ids.
func (r *MovieRepo) ReplaceGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	var m models.Movie
	if err := tx.First(&m, movieID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("movie not found: %w", err)
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(&m).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}

// RecommendByGenres proposes movies from any of the given genres that the
// user has not rated yet, deduplicated across multi-genre matches and
// ranked by aggregate rating.
func (r *MovieRepo) RecommendByGenres(ctx context.Context, genreIDs []int64, excludeUserID string, limit int) ([]MovieWithStats, error) {
	if limit < 1 {
		limit = 10
	}
	var list []MovieWithStats
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Select(statsSelect).
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id IN ?", genreIDs).
		Where("movies.id NOT IN (SELECT movie_id FROM ratings WHERE user_id = ?)", excludeUserID).
		Group("movies.id").
		Order("avg_rating DESC, rating_count DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recommend by genres: %w", err)
	}
	return list, nil
}
