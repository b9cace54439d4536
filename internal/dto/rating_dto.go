package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateRatingDTO for creating or updating a rating. Value is 0-10 with one
// decimal of precision; range is checked here and again in the service
// before any write.
type CreateRatingDTO struct {
	Value *float64 `json:"value" binding:"required,min=0,max=10"`
}

// RatingResponse for returning rating information in a movie's rating list
type RatingResponse struct {
	Username  string    `json:"username"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		Username:  rating.User.Username,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// UserRatingResponse for returning the caller's own rating
type UserRatingResponse struct {
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaginatedRatingsResponse for returning paginated ratings
type PaginatedRatingsResponse struct {
	Ratings    []RatingResponse `json:"ratings"`
	Pagination Pagination       `json:"pagination"`
}

func NewPaginatedRatingsResponse(ratings []RatingResponse, page, limit int, total int64) *PaginatedRatingsResponse {
	return &PaginatedRatingsResponse{
		Ratings:    ratings,
		Pagination: NewPagination(page, limit, total),
	}
}
