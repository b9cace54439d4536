package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/dto"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMovieRouter(movies *MockMovieService, recs *MockRecommendationService, auth *MockAuthService) http.Handler {
	router := setupRouter()
	NewMovieHandler(movies, recs, testResponder()).RegisterRoutes(router.Group("/api/movies"), auth)
	return router
}

func TestListMovies_QueryParamsFlowIntoFilter(t *testing.T) {
	mockMovies := new(MockMovieService)
	router := newMovieRouter(mockMovies, new(MockRecommendationService), new(MockAuthService))

	expected := repository.MovieFilter{
		Page:      2,
		Limit:     4,
		Search:    "alien",
		Year:      1986,
		Genre:     "horror",
		Sort:      "rating-desc",
		MinRating: 6.5,
	}
	mockMovies.On("List", mock.Anything, expected).
		Return(&dto.PaginatedMoviesResponse{
			Movies:     []dto.MovieResponse{},
			Pagination: dto.NewPagination(2, 4, 0),
		}, nil)

	req, _ := http.NewRequest("GET",
		"/api/movies?page=2&limit=4&search=alien&year=1986&genre=horror&sort=rating-desc&minRating=6.5", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	mockMovies.AssertExpectations(t)
}

func TestGetMovie_InvalidID(t *testing.T) {
	mockMovies := new(MockMovieService)
	router := newMovieRouter(mockMovies, new(MockRecommendationService), new(MockAuthService))

	req, _ := http.NewRequest("GET", "/api/movies/not-a-number", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMovies.AssertNotCalled(t, "GetByID")
}

func TestGetMovie_NotFound(t *testing.T) {
	mockMovies := new(MockMovieService)
	router := newMovieRouter(mockMovies, new(MockRecommendationService), new(MockAuthService))

	mockMovies.On("GetByID", mock.Anything, int64(999)).
		Return(nil, service.ErrMovieNotFound)

	req, _ := http.NewRequest("GET", "/api/movies/999", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Movie not found", response["message"])
	mockMovies.AssertExpectations(t)
}

func TestSearchMovies_MissingQuery(t *testing.T) {
	mockMovies := new(MockMovieService)
	router := newMovieRouter(mockMovies, new(MockRecommendationService), new(MockAuthService))

	req, _ := http.NewRequest("GET", "/api/movies/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMovies.AssertNotCalled(t, "Search")
}

func TestTopRatedMovies(t *testing.T) {
	mockMovies := new(MockMovieService)
	router := newMovieRouter(mockMovies, new(MockRecommendationService), new(MockAuthService))

	mockMovies.On("TopRated", mock.Anything, 10).
		Return([]dto.MovieResponse{{ID: 1, Title: "Best", AvgRating: 9.5}}, nil)

	req, _ := http.NewRequest("GET", "/api/movies/top-rated", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []dto.MovieResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Best", response.Data[0].Title)
	mockMovies.AssertExpectations(t)
}

func TestRecommendations_RequireAuth(t *testing.T) {
	mockRecs := new(MockRecommendationService)
	router := newMovieRouter(new(MockMovieService), mockRecs, new(MockAuthService))

	req, _ := http.NewRequest("GET", "/api/movies/recommendations", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockRecs.AssertNotCalled(t, "ForUser")
}

func TestRecommendations_Success(t *testing.T) {
	mockRecs := new(MockRecommendationService)
	mockAuth := new(MockAuthService)
	allowToken(mockAuth, "user-1")
	router := newMovieRouter(new(MockMovieService), mockRecs, mockAuth)

	mockRecs.On("ForUser", mock.Anything, "user-1").
		Return([]dto.MovieResponse{{ID: 7, Title: "Pick"}}, nil)

	req, _ := http.NewRequest("GET", "/api/movies/recommendations", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []dto.MovieResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Pick", response.Data[0].Title)
	mockRecs.AssertExpectations(t)
}
