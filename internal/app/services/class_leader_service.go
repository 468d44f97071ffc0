package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/pkg/validation"
)

// ClassLeaderStore is the persistence surface the class leader service depends on
type ClassLeaderStore interface {
	CreateClassLeader(ctx context.Context, leader *models.ClassLeader) (int64, error)
	GetClassLeaderByID(ctx context.Context, id int64) (*models.ClassLeader, error)
	GetClassLeaders(ctx context.Context, year *int, activeOnly bool) ([]*models.ClassLeader, error)
	UpdateClassLeader(ctx context.Context, leader *models.ClassLeader) error
	DeleteClassLeader(ctx context.Context, id int64) error
	GetYearCounts(ctx context.Context) ([]models.ClassLeaderYearCount, int64, error)
}

// ClassLeaderService defines the interface for class leader operations
type ClassLeaderService interface {
	CreateClassLeader(ctx context.Context, req *dto.ClassLeaderCreateRequest, image *multipart.FileHeader) (*models.ClassLeader, error)
	GetClassLeaderByID(ctx context.Context, id int64) (*models.ClassLeader, error)
	GetClassLeaders(ctx context.Context, year *int, activeOnly bool) ([]*models.ClassLeader, error)
	UpdateClassLeader(ctx context.Context, id int64, req *dto.ClassLeaderUpdateRequest, image *multipart.FileHeader) (*models.ClassLeader, error)
	DeleteClassLeader(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*dto.ClassLeaderStatsResponse, error)
}

// classLeaderServiceImpl implements the ClassLeaderService interface
type classLeaderServiceImpl struct {
	leaderRepo ClassLeaderStore
	storage    filestorage.FileStorage
}

// NewClassLeaderService creates a new class leader service instance
func NewClassLeaderService(leaderRepo ClassLeaderStore, storage filestorage.FileStorage) ClassLeaderService {
	return &classLeaderServiceImpl{
		leaderRepo: leaderRepo,
		storage:    storage,
	}
}

// CreateClassLeader stores a new class leader, saving the portrait if uploaded
func (s *classLeaderServiceImpl) CreateClassLeader(ctx context.Context, req *dto.ClassLeaderCreateRequest, image *multipart.FileHeader) (*models.ClassLeader, error) {
	if !validation.IsValidYearOfStudy(req.YearOfStudy) {
		return nil, fmt.Errorf("%w: year of study must be between %d and %d", apperrors.ErrValidationFailed, validation.YearOfStudyMin, validation.YearOfStudyMax)
	}

	leader := &models.ClassLeader{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Position:    strings.TrimSpace(req.Position),
		YearOfStudy: req.YearOfStudy,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Bio:         req.Bio,
		SocialAccounts: models.SocialLinks{
			Facebook:  req.Facebook,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			LinkedIn:  req.LinkedIn,
			WhatsApp:  req.WhatsApp,
		},
		IsActive: true,
	}

	if image != nil {
		path, err := s.storage.SaveUpload(image, filestorage.KindAvatar)
		if err != nil {
			return nil, err
		}
		leader.ImageURL = path
	}

	id, err := s.leaderRepo.CreateClassLeader(ctx, leader)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("classLeaderID", id).Int("year", leader.YearOfStudy).Msg("Class leader created")
	return s.leaderRepo.GetClassLeaderByID(ctx, id)
}

// GetClassLeaderByID retrieves a single class leader
func (s *classLeaderServiceImpl) GetClassLeaderByID(ctx context.Context, id int64) (*models.ClassLeader, error) {
	return s.leaderRepo.GetClassLeaderByID(ctx, id)
}

// GetClassLeaders lists class leaders, optionally filtered by year of study
func (s *classLeaderServiceImpl) GetClassLeaders(ctx context.Context, year *int, activeOnly bool) ([]*models.ClassLeader, error) {
	if year != nil && !validation.IsValidYearOfStudy(*year) {
		return nil, fmt.Errorf("%w: year of study must be between %d and %d", apperrors.ErrValidationFailed, validation.YearOfStudyMin, validation.YearOfStudyMax)
	}
	return s.leaderRepo.GetClassLeaders(ctx, year, activeOnly)
}

// UpdateClassLeader applies a partial update, replacing the portrait when a
// new one is uploaded
func (s *classLeaderServiceImpl) UpdateClassLeader(ctx context.Context, id int64, req *dto.ClassLeaderUpdateRequest, image *multipart.FileHeader) (*models.ClassLeader, error) {
	leader, err := s.leaderRepo.GetClassLeaderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		leader.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		leader.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Position != nil {
		leader.Position = strings.TrimSpace(*req.Position)
	}
	if req.YearOfStudy != nil {
		if !validation.IsValidYearOfStudy(*req.YearOfStudy) {
			return nil, fmt.Errorf("%w: year of study must be between %d and %d", apperrors.ErrValidationFailed, validation.YearOfStudyMin, validation.YearOfStudyMax)
		}
		leader.YearOfStudy = *req.YearOfStudy
	}
	if req.Email != nil {
		leader.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		leader.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Bio != nil {
		leader.Bio = *req.Bio
	}
	if req.Facebook != nil {
		leader.SocialAccounts.Facebook = *req.Facebook
	}
	if req.Twitter != nil {
		leader.SocialAccounts.Twitter = *req.Twitter
	}
	if req.Instagram != nil {
		leader.SocialAccounts.Instagram = *req.Instagram
	}
	if req.LinkedIn != nil {
		leader.SocialAccounts.LinkedIn = *req.LinkedIn
	}
	if req.WhatsApp != nil {
		leader.SocialAccounts.WhatsApp = *req.WhatsApp
	}
	if req.IsActive != nil {
		leader.IsActive = *req.IsActive
	}

	var old string
	if image != nil {
		path, err := s.storage.SaveUpload(image, filestorage.KindAvatar)
		if err != nil {
			return nil, err
		}
		old = leader.ImageURL
		leader.ImageURL = path
	}

	if err := s.leaderRepo.UpdateClassLeader(ctx, leader); err != nil {
		return nil, err
	}
	if old != "" {
		if err := s.storage.DeleteFile(old); err != nil {
			logger.Warn().Err(err).Int64("classLeaderID", id).Msg("Failed to delete old class leader image")
		}
	}

	return leader, nil
}

// DeleteClassLeader removes a class leader and their stored portrait
func (s *classLeaderServiceImpl) DeleteClassLeader(ctx context.Context, id int64) error {
	leader, err := s.leaderRepo.GetClassLeaderByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.leaderRepo.DeleteClassLeader(ctx, id); err != nil {
		return err
	}
	if leader.ImageURL != "" {
		if err := s.storage.DeleteFile(leader.ImageURL); err != nil {
			logger.Warn().Err(err).Int64("classLeaderID", id).Msg("Failed to delete class leader image")
		}
	}
	return nil
}

// GetStats tallies active class leaders per year of study
func (s *classLeaderServiceImpl) GetStats(ctx context.Context) (*dto.ClassLeaderStatsResponse, error) {
	counts, total, err := s.leaderRepo.GetYearCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ClassLeaderStatsResponse{
		Success: true,
		Total:   total,
		ByYear:  counts,
	}, nil
}
