package dto

import (
	"time"

	"moviehub/internal/models"
)

type CreateReviewDTO struct {
	Title            string `json:"title" binding:"required"`
	Content          string `json:"content" binding:"required"`
	ContainsSpoilers bool   `json:"contains_spoilers"`
}

// UpdateReviewDTO allows partial edits of an owned review.
type UpdateReviewDTO struct {
	Title            *string `json:"title,omitempty"`
	Content          *string `json:"content,omitempty"`
	ContainsSpoilers *bool   `json:"contains_spoilers,omitempty"`
}

func (d UpdateReviewDTO) ApplyTo(r *models.Review) {
	if d.Title != nil {
		r.Title = *d.Title
	}
	if d.Content != nil {
		r.Content = *d.Content
	}
	if d.ContainsSpoilers != nil {
		r.ContainsSpoilers = *d.ContainsSpoilers
	}
}

type ReviewResponse struct {
	ID               int64     `json:"id"`
	MovieID          int64     `json:"movie_id"`
	Username         string    `json:"username"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	ContainsSpoilers bool      `json:"contains_spoilers"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:               review.ID,
		MovieID:          review.MovieID,
		Username:         review.User.Username,
		Title:            review.Title,
		Content:          review.Content,
		ContainsSpoilers: review.ContainsSpoilers,
		CreatedAt:        review.CreatedAt,
		UpdatedAt:        review.UpdatedAt,
	}
}

type PaginatedReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Pagination Pagination       `json:"pagination"`
}
