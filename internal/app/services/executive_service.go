package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// ExecutiveStore is the persistence surface the executive service depends on
type ExecutiveStore interface {
	CreateExecutive(ctx context.Context, executive *models.Executive) (int64, error)
	GetExecutiveByID(ctx context.Context, id int64) (*models.Executive, error)
	GetExecutives(ctx context.Context, activeOnly bool) ([]*models.Executive, error)
	UpdateExecutive(ctx context.Context, executive *models.Executive) error
	DeleteExecutive(ctx context.Context, id int64) error
}

// ExecutiveService defines the interface for executive operations
type ExecutiveService interface {
	CreateExecutive(ctx context.Context, req *dto.ExecutiveCreateRequest, image *multipart.FileHeader) (*models.Executive, error)
	GetExecutiveByID(ctx context.Context, id int64) (*models.Executive, error)
	GetExecutives(ctx context.Context, activeOnly bool) ([]*models.Executive, error)
	UpdateExecutive(ctx context.Context, id int64, req *dto.ExecutiveUpdateRequest, image *multipart.FileHeader) (*models.Executive, error)
	DeleteExecutive(ctx context.Context, id int64) error
}

// executiveServiceImpl implements the ExecutiveService interface
type executiveServiceImpl struct {
	executiveRepo ExecutiveStore
	storage       filestorage.FileStorage
}

// NewExecutiveService creates a new executive service instance
func NewExecutiveService(executiveRepo ExecutiveStore, storage filestorage.FileStorage) ExecutiveService {
	return &executiveServiceImpl{
		executiveRepo: executiveRepo,
		storage:       storage,
	}
}

// CreateExecutive stores a new executive, saving the portrait if uploaded
func (s *executiveServiceImpl) CreateExecutive(ctx context.Context, req *dto.ExecutiveCreateRequest, image *multipart.FileHeader) (*models.Executive, error) {
	executive := &models.Executive{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Position:    strings.TrimSpace(req.Position),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		YearOfStudy: req.YearOfStudy,
		SocialMedia: models.SocialLinks{
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
		executive.ImageURL = path
	}

	id, err := s.executiveRepo.CreateExecutive(ctx, executive)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("executiveID", id).Str("position", executive.Position).Msg("Executive created")
	return s.executiveRepo.GetExecutiveByID(ctx, id)
}

// GetExecutiveByID retrieves a single executive
func (s *executiveServiceImpl) GetExecutiveByID(ctx context.Context, id int64) (*models.Executive, error) {
	return s.executiveRepo.GetExecutiveByID(ctx, id)
}

// GetExecutives lists executives, optionally only active ones
func (s *executiveServiceImpl) GetExecutives(ctx context.Context, activeOnly bool) ([]*models.Executive, error) {
	return s.executiveRepo.GetExecutives(ctx, activeOnly)
}

// UpdateExecutive applies a partial update, replacing the portrait when a
// new one is uploaded
func (s *executiveServiceImpl) UpdateExecutive(ctx context.Context, id int64, req *dto.ExecutiveUpdateRequest, image *multipart.FileHeader) (*models.Executive, error) {
	executive, err := s.executiveRepo.GetExecutiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		executive.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		executive.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Position != nil {
		executive.Position = strings.TrimSpace(*req.Position)
	}
	if req.Email != nil {
		executive.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		executive.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.YearOfStudy != nil {
		executive.YearOfStudy = req.YearOfStudy
	}
	if req.Facebook != nil {
		executive.SocialMedia.Facebook = *req.Facebook
	}
	if req.Twitter != nil {
		executive.SocialMedia.Twitter = *req.Twitter
	}
	if req.Instagram != nil {
		executive.SocialMedia.Instagram = *req.Instagram
	}
	if req.LinkedIn != nil {
		executive.SocialMedia.LinkedIn = *req.LinkedIn
	}
	if req.WhatsApp != nil {
		executive.SocialMedia.WhatsApp = *req.WhatsApp
	}
	if req.IsActive != nil {
		executive.IsActive = *req.IsActive
	}

	var old string
	if image != nil {
		path, err := s.storage.SaveUpload(image, filestorage.KindAvatar)
		if err != nil {
			return nil, err
		}
		old = executive.ImageURL
		executive.ImageURL = path
	}

	if err := s.executiveRepo.UpdateExecutive(ctx, executive); err != nil {
		return nil, err
	}
	if old != "" {
		if err := s.storage.DeleteFile(old); err != nil {
			logger.Warn().Err(err).Int64("executiveID", id).Msg("Failed to delete old executive image")
		}
	}

	return executive, nil
}

// DeleteExecutive removes an executive and their stored portrait
func (s *executiveServiceImpl) DeleteExecutive(ctx context.Context, id int64) error {
	executive, err := s.executiveRepo.GetExecutiveByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.executiveRepo.DeleteExecutive(ctx, id); err != nil {
		return err
	}
	if executive.ImageURL != "" {
		if err := s.storage.DeleteFile(executive.ImageURL); err != nil {
			logger.Warn().Err(err).Int64("executiveID", id).Msg("Failed to delete executive image")
		}
	}
	return nil
}
