package repository

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// MonthlyActivity is one calendar month's activity count for a user.
type MonthlyActivity struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type ActivityRepository interface {
	Log(ctx context.Context, entry *models.ActivityLog) error
	MonthlyCounts(ctx context.Context, userID string, since time.Time) ([]MonthlyActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Log(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// MonthlyCounts groups the user's activity rows by calendar month from
// `since` onward. Postgres dialect (TO_CHAR).
func (r *activityRepository) MonthlyCounts(ctx context.Context, userID string, since time.Time) ([]MonthlyActivity, error) {
	var rows []MonthlyActivity
	err := r.db.WithContext(ctx).Raw(`
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM activity_logs
		WHERE user_id = ? AND created_at >= ?
		GROUP BY month
		ORDER BY month ASC`, userID, since).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("monthly activity counts: %w", err)
	}
	return rows, nil
}
