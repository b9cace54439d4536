package handler

import (
	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	auth      service.AuthService
	users     service.UserService
	responder *responder
}

func NewUserHandler(auth service.AuthService, users service.UserService, r *responder) *UserHandler {
	return &UserHandler{auth: auth, users: users, responder: r}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
	rg.POST("/logout", h.Logout)

	me := rg.Group("/me", middleware.RequireAuth(authService))
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.POST("/avatar", h.UploadAvatar)
		me.DELETE("", h.DeleteAccount)
	}
}

// Register creates a new account.
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var in dto.RegisterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.created(c, dto.FromModelToUserResponse(user))
}

// Login authenticates and returns token pair plus user payload.
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var in dto.LoginDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	accessToken, refreshToken, user, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.FromModelToUserResponse(user),
	})
}

// Refresh rotates an access token from a live refresh token.
// POST /api/users/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var in dto.RefreshDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	accessToken, err := h.auth.RefreshAccessToken(c.Request.Context(), in.RefreshToken)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, gin.H{"access_token": accessToken})
}

// Logout revokes the submitted refresh token.
// POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	var in dto.RefreshDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	if err := h.auth.Logout(c.Request.Context(), in.RefreshToken); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Logged out")
}

// GetProfile returns the caller's profile.
// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, profile)
}

// UpdateProfile applies a partial profile update.
// PUT /api/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	var in dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		h.responder.badRequest(c, err.Error())
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), userID, in)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, profile)
}

// UploadAvatar stores a profile picture and records its URL.
// POST /api/users/me/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		h.responder.badRequest(c, "Avatar file is required")
		return
	}

	url, err := h.users.SaveAvatar(c.Request.Context(), userID, file)
	if err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.ok(c, gin.H{"avatar_url": url})
}

// DeleteAccount deactivates the caller's account; the row is kept.
// DELETE /api/users/me
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.responder.unauthorized(c)
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.responder.fail(c, err)
		return
	}
	h.responder.message(c, "Account deactivated")
}
