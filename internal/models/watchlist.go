package models

import "time"

type WatchlistEntry struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_movie"`
	MovieID int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_watchlist_user_movie"`
	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`

	Movie Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist_entries"
}
