package service

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/config"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (AuthService, repository.UserRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{
		JWTSecret:       "test-secret-test-secret-test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}
	svc := NewAuthService(userRepo, repository.NewRefreshTokenRepository(db), cfg)
	return svc, userRepo, db
}

func TestRegister_DuplicateUsernameAndEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "new@example.com", "password123")
	assert.ErrorIs(t, err, ErrNameInUse)

	_, err = svc.Register(context.Background(), "alice2", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _, _ := newAuthService(t)

	registered, err := svc.Register(context.Background(), "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	access, refresh, user, err := svc.Login(context.Background(), "bob", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.ValidateToken(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "bob", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "carol", "carol@example.com", "password123")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "carol", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccountRejected(t *testing.T) {
	svc, userRepo, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), "dave", "dave@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Deactivate(context.Background(), user.ID))

	_, _, _, err = svc.Login(context.Background(), "dave", "password123")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestValidateToken_DeactivationInvalidatesLiveTokens(t *testing.T) {
	svc, userRepo, _ := newAuthService(t)

	user, err := svc.Register(context.Background(), "erin", "erin@example.com", "password123")
	require.NoError(t, err)
	access, _, _, err := svc.Login(context.Background(), "erin", "password123")
	require.NoError(t, err)

	require.NoError(t, userRepo.Deactivate(context.Background(), user.ID))

	_, err = svc.ValidateToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestValidateToken_GarbageRejected(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken_Flow(t *testing.T) {
	svc, _, db := newAuthService(t)

	_, err := svc.Register(context.Background(), "frank", "frank@example.com", "password123")
	require.NoError(t, err)
	_, refresh, _, err := svc.Login(context.Background(), "frank", "password123")
	require.NoError(t, err)

	access, err := svc.RefreshAccessToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.RefreshAccessToken(context.Background(), "unknown-token")
	assert.Error(t, err)

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("token = ?", refresh).
		Update("revoked", true).Error)

	_, err = svc.RefreshAccessToken(context.Background(), refresh)
	assert.Error(t, err)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, _, db := newAuthService(t)

	_, err := svc.Register(context.Background(), "grace", "grace@example.com", "password123")
	require.NoError(t, err)
	_, refresh, _, err := svc.Login(context.Background(), "grace", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), refresh))

	// The row survives, flagged revoked, and no longer mints access tokens.
	var stored models.RefreshToken
	require.NoError(t, db.Where("token = ?", refresh).First(&stored).Error)
	assert.True(t, stored.Revoked)

	_, err = svc.RefreshAccessToken(context.Background(), refresh)
	assert.Error(t, err)
}

func TestLogout_UnknownTokenIsIdempotent(t *testing.T) {
	svc, _, _ := newAuthService(t)

	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
}
