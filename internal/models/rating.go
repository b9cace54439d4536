package models

import "time"

// Rating holds one user's score for one movie. Value is on a 0-10 scale
// with one decimal of precision; the per-movie average is always computed
// at read time, never stored on the movie row.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_movie"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_ratings_user_movie"`
	Value     float64   `json:"value" gorm:"type:decimal(3,1);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Rating) TableName() string {
	return "ratings"
}
