package models

import "time"

type Movie struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title          string     `json:"title" gorm:"not null;index"`
	Overview       *string    `json:"overview,omitempty"`
	Tagline        *string    `json:"tagline,omitempty"`
	ReleaseDate    *time.Time `json:"release_date,omitempty" gorm:"index"`
	RuntimeMinutes *int       `json:"runtime_minutes,omitempty"`
	Budget         *int64     `json:"budget,omitempty"`
	Revenue        *int64     `json:"revenue,omitempty"`
	PosterURL      *string    `json:"poster_url,omitempty"`
	TMDBID         *string    `json:"tmdb_id,omitempty" gorm:"uniqueIndex;size:32"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// associations
	Genres []Genre      `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE;"`
	Cast   []CastMember `json:"cast,omitempty" gorm:"foreignKey:MovieID"`
	Crew   []CrewMember `json:"crew,omitempty" gorm:"foreignKey:MovieID"`
}

func (Movie) TableName() string {
	return "movies"
}
