package handler

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"

	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testResponder() *responder {
	return newResponder(slog.New(slog.NewTextHandler(io.Discard, nil)), false)
}

// MockAuthService mocks service.AuthService for middleware-protected routes.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockUserService mocks service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileDTO) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) SaveAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, userID, file)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// allowToken wires the mock to accept "good-token" as the given user.
func allowToken(m *MockAuthService, userID string) {
	m.On("ValidateToken", mock.Anything, "good-token").
		Return(&service.Claims{UserID: userID, Username: "tester"}, nil)
}

// MockMovieService mocks service.MovieService.
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedMoviesResponse), args.Error(1)
}

func (m *MockMovieService) GetByID(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, in dto.CreateMovieDTO) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, in dto.UpdateMovieDTO) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieService) TopRated(ctx context.Context, limit int) ([]dto.MovieResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) NewReleases(ctx context.Context, filter repository.MovieFilter) (*dto.PaginatedMoviesResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedMoviesResponse), args.Error(1)
}

func (m *MockMovieService) ByGenre(ctx context.Context, name string, page, limit int) (*dto.PaginatedMoviesResponse, error) {
	args := m.Called(ctx, name, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedMoviesResponse), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, query string, page, limit int) (*dto.PaginatedMoviesResponse, error) {
	args := m.Called(ctx, query, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedMoviesResponse), args.Error(1)
}

// MockRecommendationService mocks service.RecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) ForUser(ctx context.Context, userID string) ([]dto.MovieResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

// MockRatingService mocks service.RatingService.
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) CreateOrUpdateRating(ctx context.Context, userID string, movieID int64, value float64) (*dto.UserRatingResponse, error) {
	args := m.Called(ctx, userID, movieID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserRatingResponse), args.Error(1)
}

func (m *MockRatingService) DeleteRating(ctx context.Context, userID string, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockRatingService) GetUserRating(ctx context.Context, userID string, movieID int64) (*dto.UserRatingResponse, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserRatingResponse), args.Error(1)
}

func (m *MockRatingService) GetMovieRatings(ctx context.Context, movieID int64, page, pageSize int) (*dto.PaginatedRatingsResponse, error) {
	args := m.Called(ctx, movieID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedRatingsResponse), args.Error(1)
}

func (m *MockRatingService) GetMovieAverageRating(ctx context.Context, movieID int64) (float64, int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}
