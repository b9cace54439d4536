package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"moviehub/internal/apperr"
	"moviehub/internal/dto"
	"moviehub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = apperr.NotFound("User not found")

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileDTO) (*dto.UserResponse, error)
	SaveAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	userRepo      repository.UserRepository
	uploadDir     string
	uploadBaseURL string
}

func NewUserService(userRepo repository.UserRepository, uploadDir, uploadBaseURL string) UserService {
	return &userService{
		userRepo:      userRepo,
		uploadDir:     uploadDir,
		uploadBaseURL: uploadBaseURL,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToUserResponse(user)
	return &resp, nil
}

// UpdateProfile is a partial update: only supplied fields overwrite.
func (s *userService) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileDTO) (*dto.UserResponse, error) {
	fields := map[string]any{}
	if in.DisplayName != nil {
		fields["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Email != nil {
		if existing, err := s.userRepo.FindByEmail(ctx, *in.Email); err == nil && existing.ID != userID {
			return nil, ErrEmailInUse
		}
		fields["email"] = *in.Email
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

// SaveAvatar writes the uploaded profile picture under the configured upload
// directory and stores the resulting URL verbatim on the user row.
func (s *userService) SaveAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", apperr.BadRequest("Unsupported image format")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(s.uploadDir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	url := s.uploadBaseURL + "/" + name
	if err := s.userRepo.UpdateFields(ctx, userID, map[string]any{"avatar_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

// DeleteAccount deactivates, never hard-deletes: the row stays with
// is_active=false, and later token validation rejects the account.
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Deactivate(ctx, userID)
}
