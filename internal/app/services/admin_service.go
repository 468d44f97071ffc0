package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/auth"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// AdminStore is the persistence surface the admin service depends on
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdminByID(ctx context.Context, id int64) (*models.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error
	RecordLogin(ctx context.Context, id int64) error
}

// CommunicationStore is the persistence surface for the contact settings singleton
type CommunicationStore interface {
	GetCommunication(ctx context.Context) (*models.Communication, error)
	UpsertCommunication(ctx context.Context, c *models.Communication) error
}

// AdminService defines the interface for admin account operations
type AdminService interface {
	Login(ctx context.Context, username, password string) (*dto.AdminAuthResponse, error)
	GetProfile(ctx context.Context, id int64) (*models.Admin, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.AdminProfileUpdateRequest) (*models.Admin, error)
	VerifyPassword(ctx context.Context, id int64, password string) (bool, error)
	GetCommunication(ctx context.Context) (*models.Communication, error)
	UpdateCommunication(ctx context.Context, req *dto.CommunicationUpdateRequest) (*models.Communication, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	adminRepo  AdminStore
	commRepo   CommunicationStore
	jwtService *auth.JWTService
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo AdminStore, commRepo CommunicationStore, jwtService *auth.JWTService) AdminService {
	return &adminServiceImpl{
		adminRepo:  adminRepo,
		commRepo:   commRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an admin and issues an access token
func (s *adminServiceImpl) Login(ctx context.Context, username, password string) (*dto.AdminAuthResponse, error) {
	admin, err := s.adminRepo.GetAdminByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Username, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.adminRepo.RecordLogin(ctx, admin.ID); err != nil {
		logger.Warn().Err(err).Int64("adminID", admin.ID).Msg("Failed to record admin login")
	}

	logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return &dto.AdminAuthResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: int64(expiresIn),
		Admin: dto.AdminInfo{
			Username: admin.Username,
			Role:     string(admin.Role),
		},
	}, nil
}

// GetProfile retrieves the admin account record
func (s *adminServiceImpl) GetProfile(ctx context.Context, id int64) (*models.Admin, error) {
	return s.adminRepo.GetAdminByID(ctx, id)
}

// UpdateProfile changes the admin's username and/or password after
// re-verifying the current password
func (s *adminServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.AdminProfileUpdateRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.GetAdminByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.Password, req.CurrentPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	username := admin.Username
	if strings.TrimSpace(req.NewUsername) != "" {
		username = strings.TrimSpace(req.NewUsername)
	}

	passwordHash := admin.Password
	if req.NewPassword != "" {
		if req.NewPassword != req.ConfirmPassword {
			return nil, apperrors.NewValidationError("password confirmation does not match")
		}
		passwordHash, err = auth.HashPassword(req.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	if err := s.adminRepo.UpdateCredentials(ctx, id, username, passwordHash); err != nil {
		return nil, err
	}

	logger.Info().Int64("adminID", id).Str("username", username).Msg("Admin profile updated")
	return s.adminRepo.GetAdminByID(ctx, id)
}

// VerifyPassword re-checks the admin's password
func (s *adminServiceImpl) VerifyPassword(ctx context.Context, id int64, password string) (bool, error) {
	admin, err := s.adminRepo.GetAdminByID(ctx, id)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(admin.Password, password), nil
}

// GetCommunication returns the stored contact settings, falling back to the
// built-in defaults when nothing has been persisted yet. The defaults are
// never written to the store.
func (s *adminServiceImpl) GetCommunication(ctx context.Context) (*models.Communication, error) {
	c, err := s.commRepo.GetCommunication(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return models.DefaultCommunication(), nil
		}
		return nil, err
	}
	return c, nil
}

// UpdateCommunication merges the patch over the current settings and writes
// the result atomically under the fixed singleton key
func (s *adminServiceImpl) UpdateCommunication(ctx context.Context, req *dto.CommunicationUpdateRequest) (*models.Communication, error) {
	current, err := s.GetCommunication(ctx)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		current.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		current.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Office != nil {
		current.Office = *req.Office
	}
	if req.OfficeHours != nil {
		current.OfficeHours = *req.OfficeHours
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.SocialMedia != nil {
		current.SocialMedia = *req.SocialMedia
	}
	if req.ResponseTime != nil {
		current.ResponseTime = *req.ResponseTime
	}
	if req.AdditionalInfo != nil {
		current.AdditionalInfo = *req.AdditionalInfo
	}

	if err := s.commRepo.UpsertCommunication(ctx, current); err != nil {
		return nil, err
	}
	return s.commRepo.GetCommunication(ctx)
}
