package models

import "time"

// Review uniqueness per (user, movie) is enforced in the service layer,
// not by a database constraint.
type Review struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           string    `json:"user_id" gorm:"type:uuid;index;not null"`
	MovieID          int64     `json:"movie_id" gorm:"index;not null"`
	Title            string    `json:"title" gorm:"not null"`
	Content          string    `json:"content" gorm:"not null"`
	ContainsSpoilers bool      `json:"contains_spoilers" gorm:"default:false;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (Review) TableName() string {
	return "reviews"
}
