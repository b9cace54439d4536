package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserRoutes(auth *MockAuthService) http.Handler {
	router := setupRouter()
	h := NewUserHandler(auth, new(MockUserService), testResponder())
	h.RegisterRoutes(router.Group("/api/users"), auth)
	return router
}

func TestLogout_Success(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("Logout", mock.Anything, "refresh-123").Return(nil)
	router := setupUserRoutes(auth)

	req, _ := http.NewRequest("POST", "/api/users/logout", strings.NewReader(`{"refresh_token":"refresh-123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
	auth.AssertExpectations(t)
}

func TestLogout_MissingToken(t *testing.T) {
	auth := new(MockAuthService)
	router := setupUserRoutes(auth)

	req, _ := http.NewRequest("POST", "/api/users/logout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	auth.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}
