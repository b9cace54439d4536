package models

import "time"

// ActivityLog rows are written as a side effect of rating actions and feed
// the trailing 12-month activity rollup on the per-user stats endpoint.
type ActivityLog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Action    string    `json:"action" gorm:"not null;size:50"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

const (
	ActivityRatingCreated = "rating.created"
	ActivityRatingUpdated = "rating.updated"
	ActivityRatingDeleted = "rating.deleted"
)

func (ActivityLog) TableName() string {
	return "activity_logs"
}
