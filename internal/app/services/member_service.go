package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/auth"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/pkg/validation"
)

// MemberStore is the persistence surface the member service depends on
type MemberStore interface {
	CreateMember(ctx context.Context, member *models.Member) (int64, error)
	GetMemberByID(ctx context.Context, id int64) (*models.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
	GetVisibleMembers(ctx context.Context) ([]*models.Member, error)
	GetAllMembers(ctx context.Context) ([]*models.Member, error)
	UpdateMember(ctx context.Context, member *models.Member) error
	UpdateStatus(ctx context.Context, id int64, status models.PresenceStatus) error
	DeleteMember(ctx context.Context, id int64) error
	GetDirectoryStats(ctx context.Context) (*dto.DirectoryStats, error)
	GetAdminStats(ctx context.Context) (*dto.AdminMemberStats, error)
}

// MemberService defines the interface for member operations
type MemberService interface {
	Register(ctx context.Context, req *dto.MemberRegisterRequest) (*models.Member, error)
	Login(ctx context.Context, email, password string) (*dto.MemberAuthResponse, error)
	GetDirectory(ctx context.Context) (*dto.MemberDirectoryResponse, error)
	GetAdminList(ctx context.Context) (*dto.AdminMemberListResponse, error)
	GetMemberByID(ctx context.Context, id int64) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, req *dto.MemberUpdateRequest) (*models.Member, error)
	AdminUpdateMember(ctx context.Context, id int64, req *dto.MemberAdminUpdateRequest) (*models.Member, error)
	ApproveMember(ctx context.Context, id int64) (*models.Member, error)
	DeleteMember(ctx context.Context, id int64) error
	UpdateProfilePicture(ctx context.Context, id int64, fileHeader *multipart.FileHeader) (*models.Member, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	VerifyPassword(ctx context.Context, id int64, password string) (bool, error)
}

// memberServiceImpl implements the MemberService interface
type memberServiceImpl struct {
	memberRepo MemberStore
	jwtService *auth.JWTService
	storage    filestorage.FileStorage
}

// NewMemberService creates a new member service instance
func NewMemberService(memberRepo MemberStore, jwtService *auth.JWTService, storage filestorage.FileStorage) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
		jwtService: jwtService,
		storage:    storage,
	}
}

// Register validates and stores a new member. Accounts start unapproved and
// cannot log in until an admin approves them.
func (s *memberServiceImpl) Register(ctx context.Context, req *dto.MemberRegisterRequest) (*models.Member, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsStudentEmail(email) {
		return nil, apperrors.ErrInvalidEmailDomain
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	if req.YearOfStudy != nil && !validation.IsValidYearOfStudy(*req.YearOfStudy) {
		return nil, fmt.Errorf("%w: year of study must be between %d and %d", apperrors.ErrValidationFailed, validation.YearOfStudyMin, validation.YearOfStudyMax)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profileVisible := true
	if req.ProfileVisible != nil {
		profileVisible = *req.ProfileVisible
	}
	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}

	member := &models.Member{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		YearOfStudy:    req.YearOfStudy,
		Department:     strings.TrimSpace(req.Department),
		StudentID:      strings.TrimSpace(req.StudentID),
		Password:       hash,
		Approved:       false,
		ProfileVisible: profileVisible,
		Newsletter:     req.Newsletter,
		Interests:      interests,
		Status:         models.PresenceOffline,
		IsActive:       true,
	}

	id, err := s.memberRepo.CreateMember(ctx, member)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("memberID", id).Str("email", email).Msg("Member registered, pending approval")
	return s.memberRepo.GetMemberByID(ctx, id)
}

// Login authenticates a member and issues an access token. Unapproved
// accounts are rejected even with correct credentials.
func (s *memberServiceImpl) Login(ctx context.Context, email, password string) (*dto.MemberAuthResponse, error) {
	member, err := s.memberRepo.GetMemberByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(member.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !member.Approved {
		return nil, apperrors.ErrMemberNotApproved
	}

	token, expiresIn, err := s.jwtService.GenerateToken(member.ID, member.FirstName+" "+member.LastName, auth.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.memberRepo.UpdateStatus(ctx, member.ID, models.PresenceOnline); err != nil {
		logger.Warn().Err(err).Int64("memberID", member.ID).Msg("Failed to set member online")
	} else {
		member.Status = models.PresenceOnline
	}

	return &dto.MemberAuthResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		ExpiresIn: int64(expiresIn),
		User:      member,
	}, nil
}

// GetDirectory returns the public member directory with aggregate stats
func (s *memberServiceImpl) GetDirectory(ctx context.Context) (*dto.MemberDirectoryResponse, error) {
	members, err := s.memberRepo.GetVisibleMembers(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.memberRepo.GetDirectoryStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.MemberDirectoryResponse{
		Members: members,
		Stats:   *stats,
	}, nil
}

// GetAdminList returns the full roster with admin-facing stats
func (s *memberServiceImpl) GetAdminList(ctx context.Context) (*dto.AdminMemberListResponse, error) {
	members, err := s.memberRepo.GetAllMembers(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.memberRepo.GetAdminStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminMemberListResponse{
		Members: members,
		Stats:   *stats,
	}, nil
}

// GetMemberByID retrieves a single member
func (s *memberServiceImpl) GetMemberByID(ctx context.Context, id int64) (*models.Member, error) {
	return s.memberRepo.GetMemberByID(ctx, id)
}

func applyMemberPatch(member *models.Member, req *dto.MemberUpdateRequest) error {
	if req.FirstName != nil {
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.YearOfStudy != nil {
		if !validation.IsValidYearOfStudy(*req.YearOfStudy) {
			return fmt.Errorf("%w: year of study must be between %d and %d", apperrors.ErrValidationFailed, validation.YearOfStudyMin, validation.YearOfStudyMax)
		}
		member.YearOfStudy = req.YearOfStudy
	}
	if req.Department != nil {
		member.Department = strings.TrimSpace(*req.Department)
	}
	if req.StudentID != nil {
		member.StudentID = strings.TrimSpace(*req.StudentID)
	}
	if req.Interests != nil {
		member.Interests = req.Interests
	}
	if req.Newsletter != nil {
		member.Newsletter = *req.Newsletter
	}
	if req.ProfileVisible != nil {
		member.ProfileVisible = *req.ProfileVisible
	}
	if req.Status != nil {
		member.Status = models.PresenceStatus(*req.Status)
	}
	return nil
}

// UpdateMember applies a partial update to a member's own profile
func (s *memberServiceImpl) UpdateMember(ctx context.Context, id int64, req *dto.MemberUpdateRequest) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyMemberPatch(member, req); err != nil {
		return nil, err
	}
	if err := s.memberRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return s.memberRepo.GetMemberByID(ctx, id)
}

// AdminUpdateMember applies a partial update including admin-only fields
func (s *memberServiceImpl) AdminUpdateMember(ctx context.Context, id int64, req *dto.MemberAdminUpdateRequest) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyMemberPatch(member, &req.MemberUpdateRequest); err != nil {
		return nil, err
	}
	if req.Approved != nil {
		member.Approved = *req.Approved
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if err := s.memberRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return s.memberRepo.GetMemberByID(ctx, id)
}

// ApproveMember flags a member account as admin approved
func (s *memberServiceImpl) ApproveMember(ctx context.Context, id int64) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Approved {
		return member, nil
	}
	member.Approved = true
	if err := s.memberRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	logger.Info().Int64("memberID", id).Msg("Member approved")
	return member, nil
}

// DeleteMember removes a member and their stored profile picture
func (s *memberServiceImpl) DeleteMember(ctx context.Context, id int64) error {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, id); err != nil {
		return err
	}
	if member.ProfilePicture != "" {
		if err := s.storage.DeleteFile(member.ProfilePicture); err != nil {
			logger.Warn().Err(err).Int64("memberID", id).Msg("Failed to delete profile picture")
		}
	}
	return nil
}

// UpdateProfilePicture stores a new avatar and replaces the previous one
func (s *memberServiceImpl) UpdateProfilePicture(ctx context.Context, id int64, fileHeader *multipart.FileHeader) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.SaveUpload(fileHeader, filestorage.KindAvatar)
	if err != nil {
		return nil, err
	}

	old := member.ProfilePicture
	member.ProfilePicture = path
	if err := s.memberRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	if old != "" {
		if err := s.storage.DeleteFile(old); err != nil {
			logger.Warn().Err(err).Int64("memberID", id).Msg("Failed to delete old profile picture")
		}
	}

	return member, nil
}

// UpdateStatus sets a member's presence status
func (s *memberServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	switch models.PresenceStatus(status) {
	case models.PresenceOnline, models.PresenceAway, models.PresenceOffline:
	default:
		return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidationFailed, status)
	}
	return s.memberRepo.UpdateStatus(ctx, id, models.PresenceStatus(status))
}

// VerifyPassword re-checks a member's password
func (s *memberServiceImpl) VerifyPassword(ctx context.Context, id int64, password string) (bool, error) {
	member, err := s.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(member.Password, password), nil
}
