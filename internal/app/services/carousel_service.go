package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// CarouselStore is the persistence surface the carousel service depends on
type CarouselStore interface {
	CreateCarouselImage(ctx context.Context, img *models.CarouselImage) (int64, error)
	GetCarouselImageByID(ctx context.Context, id int64) (*models.CarouselImage, error)
	GetCarouselImages(ctx context.Context, activeOnly bool, imageType string) ([]*models.CarouselImage, error)
	UpdateCarouselImage(ctx context.Context, img *models.CarouselImage) error
	DeleteCarouselImage(ctx context.Context, id int64) error
}

// CarouselService defines the interface for homepage carousel operations
type CarouselService interface {
	CreateImage(ctx context.Context, req *dto.CarouselCreateRequest, file *multipart.FileHeader, uploadedBy string) (*models.CarouselImage, error)
	GetImageByID(ctx context.Context, id int64) (*models.CarouselImage, error)
	GetImages(ctx context.Context, activeOnly bool, imageType string) ([]*models.CarouselImage, error)
	UpdateImage(ctx context.Context, id int64, req *dto.CarouselUpdateRequest) (*models.CarouselImage, error)
	ToggleImage(ctx context.Context, id int64) (*models.CarouselImage, error)
	DeleteImage(ctx context.Context, id int64) error
}

// carouselServiceImpl implements the CarouselService interface
type carouselServiceImpl struct {
	carouselRepo CarouselStore
	storage      filestorage.FileStorage
}

// NewCarouselService creates a new carousel service instance
func NewCarouselService(carouselRepo CarouselStore, storage filestorage.FileStorage) CarouselService {
	return &carouselServiceImpl{
		carouselRepo: carouselRepo,
		storage:      storage,
	}
}

// CreateImage stores the carousel record, either from an uploaded file or
// from an externally hosted image URL
func (s *carouselServiceImpl) CreateImage(ctx context.Context, req *dto.CarouselCreateRequest, file *multipart.FileHeader, uploadedBy string) (*models.CarouselImage, error) {
	path := strings.TrimSpace(req.ImageURL)
	if file != nil {
		uploaded, err := s.storage.SaveUpload(file, filestorage.KindCarousel)
		if err != nil {
			return nil, err
		}
		path = uploaded
	}
	if path == "" {
		return nil, apperrors.NewValidationError("an image file or imageUrl is required")
	}

	imageType := models.CarouselImageType(req.ImageType)
	if imageType == "" {
		imageType = models.CarouselTypeActivity
	}
	aspectRatio := models.CarouselAspectRatio(req.AspectRatio)
	if aspectRatio == "" {
		aspectRatio = models.AspectLandscape
	}

	img := &models.CarouselImage{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    path,
		ImageType:   imageType,
		Active:      true,
		UploadedBy:  uploadedBy,
		AspectRatio: aspectRatio,
	}
	if req.DisplayOrder != nil {
		img.DisplayOrder = *req.DisplayOrder
	}

	id, err := s.carouselRepo.CreateCarouselImage(ctx, img)
	if err != nil {
		if file != nil {
			if delErr := s.storage.DeleteFile(path); delErr != nil {
				logger.Warn().Err(delErr).Str("path", path).Msg("Failed to clean up carousel file")
			}
		}
		return nil, err
	}

	logger.Info().Int64("carouselImageID", id).Str("title", img.Title).Msg("Carousel image created")
	return s.carouselRepo.GetCarouselImageByID(ctx, id)
}

// GetImageByID retrieves a single carousel image
func (s *carouselServiceImpl) GetImageByID(ctx context.Context, id int64) (*models.CarouselImage, error) {
	return s.carouselRepo.GetCarouselImageByID(ctx, id)
}

// GetImages lists carousel images in display order
func (s *carouselServiceImpl) GetImages(ctx context.Context, activeOnly bool, imageType string) ([]*models.CarouselImage, error) {
	return s.carouselRepo.GetCarouselImages(ctx, activeOnly, imageType)
}

// UpdateImage applies a partial update to a carousel image record
func (s *carouselServiceImpl) UpdateImage(ctx context.Context, id int64, req *dto.CarouselUpdateRequest) (*models.CarouselImage, error) {
	img, err := s.carouselRepo.GetCarouselImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		img.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		img.Description = *req.Description
	}
	if req.ImageType != nil {
		img.ImageType = models.CarouselImageType(*req.ImageType)
	}
	if req.Active != nil {
		img.Active = *req.Active
	}
	if req.DisplayOrder != nil {
		img.DisplayOrder = *req.DisplayOrder
	}
	if req.AspectRatio != nil {
		img.AspectRatio = models.CarouselAspectRatio(*req.AspectRatio)
	}

	if err := s.carouselRepo.UpdateCarouselImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// ToggleImage flips a carousel image's active flag
func (s *carouselServiceImpl) ToggleImage(ctx context.Context, id int64) (*models.CarouselImage, error) {
	img, err := s.carouselRepo.GetCarouselImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	img.Active = !img.Active
	if err := s.carouselRepo.UpdateCarouselImage(ctx, img); err != nil {
		return nil, err
	}

	logger.Info().Int64("carouselImageID", id).Bool("active", img.Active).Msg("Carousel image toggled")
	return img, nil
}

// DeleteImage removes a carousel image record and its stored file
func (s *carouselServiceImpl) DeleteImage(ctx context.Context, id int64) error {
	img, err := s.carouselRepo.GetCarouselImageByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.carouselRepo.DeleteCarouselImage(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(img.ImageURL); err != nil {
		logger.Warn().Err(err).Int64("carouselImageID", id).Msg("Failed to delete carousel file")
	}
	return nil
}
