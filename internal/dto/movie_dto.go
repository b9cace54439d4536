package dto

import (
	"math"
	"time"

	"moviehub/internal/models"
	"moviehub/internal/repository"
)

// CreateMovieDTO used for POST /api/movies
type CreateMovieDTO struct {
	Title          string     `json:"title" binding:"required"`
	Overview       *string    `json:"overview,omitempty"`
	Tagline        *string    `json:"tagline,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	RuntimeMinutes *int       `json:"runtime_minutes,omitempty"`
	Budget         *int64     `json:"budget,omitempty"`
	Revenue        *int64     `json:"revenue,omitempty"`
	PosterURL      *string    `json:"poster_url,omitempty"`
	TMDBID         *string    `json:"tmdb_id,omitempty"`
	GenreIDs       []int64    `json:"genre_ids,omitempty"`
}

// UpdateMovieDTO used for PUT /api/movies/:id (partial updates allowed)
type UpdateMovieDTO struct {
	Title          *string    `json:"title,omitempty"`
	Overview       *string    `json:"overview,omitempty"`
	Tagline        *string    `json:"tagline,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	RuntimeMinutes *int       `json:"runtime_minutes,omitempty"`
	Budget         *int64     `json:"budget,omitempty"`
	Revenue        *int64     `json:"revenue,omitempty"`
	PosterURL      *string    `json:"poster_url,omitempty"`
}

// MovieResponse is the listing/search shape: the movie plus its read-time
// rating aggregates, average rounded to one decimal for display.
type MovieResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    *string    `json:"overview,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	PosterURL   *string    `json:"poster_url,omitempty"`
	AvgRating   float64    `json:"avg_rating"`
	RatingCount int64      `json:"rating_count"`
}

// MovieDetailResponse adds the association-heavy fields for the detail page.
type MovieDetailResponse struct {
	MovieResponse
	Tagline        *string              `json:"tagline,omitempty"`
	RuntimeMinutes *int                 `json:"runtime_minutes,omitempty"`
	Budget         *int64               `json:"budget,omitempty"`
	Revenue        *int64               `json:"revenue,omitempty"`
	TMDBID         *string              `json:"tmdb_id,omitempty"`
	Genres         []string             `json:"genres"`
	Cast           []CastMemberResponse `json:"cast"`
	Crew           []CrewMemberResponse `json:"crew"`
}

type CastMemberResponse struct {
	PersonID      int64  `json:"person_id"`
	Name          string `json:"name"`
	CharacterName string `json:"character_name"`
	CastOrder     int    `json:"cast_order"`
}

type CrewMemberResponse struct {
	PersonID   int64  `json:"person_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Job        string `json:"job"`
}

// PaginatedMoviesResponse wraps a page of movies in the pagination envelope.
type PaginatedMoviesResponse struct {
	Movies     []MovieResponse `json:"movies"`
	Pagination Pagination      `json:"pagination"`
}

// RoundRating formats an average to the one-decimal display precision.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// Converters
func (d CreateMovieDTO) ToModel() models.Movie {
	return models.Movie{
		Title:          d.Title,
		Overview:       d.Overview,
		Tagline:        d.Tagline,
		ReleaseDate:    d.ReleaseDate,
		RuntimeMinutes: d.RuntimeMinutes,
		Budget:         d.Budget,
		Revenue:        d.Revenue,
		PosterURL:      d.PosterURL,
		TMDBID:         d.TMDBID,
	}
}

func (d UpdateMovieDTO) ApplyTo(m *models.Movie) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Overview != nil {
		m.Overview = d.Overview
	}
	if d.Tagline != nil {
		m.Tagline = d.Tagline
	}
	if d.ReleaseDate != nil {
		m.ReleaseDate = d.ReleaseDate
	}
	if d.RuntimeMinutes != nil {
		m.RuntimeMinutes = d.RuntimeMinutes
	}
	if d.Budget != nil {
		m.Budget = d.Budget
	}
	if d.Revenue != nil {
		m.Revenue = d.Revenue
	}
	if d.PosterURL != nil {
		m.PosterURL = d.PosterURL
	}
}

func FromMovieWithStats(m repository.MovieWithStats) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
		PosterURL:   m.PosterURL,
		AvgRating:   RoundRating(m.AvgRating),
		RatingCount: m.RatingCount,
	}
}

func FromMovieList(list []repository.MovieWithStats, page, limit int, total int64) PaginatedMoviesResponse {
	movies := make([]MovieResponse, 0, len(list))
	for _, m := range list {
		movies = append(movies, FromMovieWithStats(m))
	}
	return PaginatedMoviesResponse{
		Movies:     movies,
		Pagination: NewPagination(page, limit, total),
	}
}

func FromMovieDetail(m *models.Movie, avgRating float64, ratingCount int64) MovieDetailResponse {
	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	cast := make([]CastMemberResponse, 0, len(m.Cast))
	for _, c := range m.Cast {
		cast = append(cast, CastMemberResponse{
			PersonID:      c.PersonID,
			Name:          c.Person.Name,
			CharacterName: c.CharacterName,
			CastOrder:     c.CastOrder,
		})
	}
	crew := make([]CrewMemberResponse, 0, len(m.Crew))
	for _, c := range m.Crew {
		crew = append(crew, CrewMemberResponse{
			PersonID:   c.PersonID,
			Name:       c.Person.Name,
			Department: c.Department,
			Job:        c.Job,
		})
	}
	return MovieDetailResponse{
		MovieResponse: MovieResponse{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			ReleaseDate: m.ReleaseDate,
			PosterURL:   m.PosterURL,
			AvgRating:   RoundRating(avgRating),
			RatingCount: ratingCount,
		},
		Tagline:        m.Tagline,
		RuntimeMinutes: m.RuntimeMinutes,
		Budget:         m.Budget,
		Revenue:        m.Revenue,
		TMDBID:         m.TMDBID,
		Genres:         genres,
		Cast:           cast,
		Crew:           crew,
	}
}
