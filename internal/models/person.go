package models

import "time"

type Person struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"not null;index"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	DeathDate *time.Time `json:"death_date,omitempty"`
}

func (Person) TableName() string {
	return "people"
}

// CastMember is an explicit join entity: it carries its own attributes
// (character name, billing order) on top of the movie/person link.
type CastMember struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID       int64  `json:"movie_id" gorm:"index;not null"`
	PersonID      int64  `json:"person_id" gorm:"index;not null"`
	CharacterName string `json:"character_name"`
	CastOrder     int    `json:"cast_order" gorm:"default:0"`

	Person Person `json:"person" gorm:"foreignKey:PersonID"`
}

func (CastMember) TableName() string {
	return "cast_members"
}

type CrewMember struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID    int64  `json:"movie_id" gorm:"index;not null"`
	PersonID   int64  `json:"person_id" gorm:"index;not null"`
	Department string `json:"department"`
	Job        string `json:"job"`

	Person Person `json:"person" gorm:"foreignKey:PersonID"`
}

func (CrewMember) TableName() string {
	return "crew_members"
}

// MovieGenre matches the many2many table declared on Movie.Genres.
type MovieGenre struct {
	MovieID int64 `json:"movie_id" gorm:"primaryKey"`
	GenreID int64 `json:"genre_id" gorm:"primaryKey"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
