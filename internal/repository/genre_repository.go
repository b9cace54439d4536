package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// GenreCount pairs a genre with how many movies reference it in a given
// scope (whole catalog, one user's rated movies, a recommendation seed set).
type GenreCount struct {
	GenreID int64  `json:"genre_id"`
	Name    string `json:"name"`
	Count   int64  `json:"count"`
}

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *GenreRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Genre{}).Count(&count).Error
	return count, err
}

// TopGenresForMovies ranks the genres shared by the given movies, most
// frequent first. Feeds the recommendation heuristic's preference step.
func (r *GenreRepo) TopGenresForMovies(ctx context.Context, movieIDs []int64, limit int) ([]GenreCount, error) {
	if len(movieIDs) == 0 {
		return nil, nil
	}
	var rows []GenreCount
	if err := r.db.WithContext(ctx).
		Table("genres g").
		Select("g.id AS genre_id, g.name AS name, COUNT(*) AS count").
		Joins("JOIN movie_genres mg ON mg.genre_id = g.id").
		Where("mg.movie_id IN ?", movieIDs).
		Group("g.id, g.name").
		Order("count DESC, g.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top genres for movies: %w", err)
	}
	return rows, nil
}

// TopGenresForUser ranks genres by how many of the user's rated movies
// belong to them.
func (r *GenreRepo) TopGenresForUser(ctx context.Context, userID string, limit int) ([]GenreCount, error) {
	var rows []GenreCount
	if err := r.db.WithContext(ctx).
		Table("genres g").
		Select("g.id AS genre_id, g.name AS name, COUNT(DISTINCT mg.movie_id) AS count").
		Joins("JOIN movie_genres mg ON mg.genre_id = g.id").
		Joins("JOIN ratings rt ON rt.movie_id = mg.movie_id").
		Where("rt.user_id = ?", userID).
		Group("g.id, g.name").
		Order("count DESC, g.name ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top genres for user: %w", err)
	}
	return rows, nil
}
