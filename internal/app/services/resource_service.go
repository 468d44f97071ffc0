package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/app/repositories"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/pkg/validation"
)

// resourceDateLayout is the wire format for resource dates
const resourceDateLayout = "2006-01-02"

// ResourceStore is the persistence surface the resource service depends on
type ResourceStore interface {
	CreateResource(ctx context.Context, resource *models.Resource) (int64, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	GetResources(ctx context.Context, filter repositories.ResourceFilter) ([]*models.Resource, error)
	UpdateResource(ctx context.Context, resource *models.Resource) error
	SetActive(ctx context.Context, id int64, active bool) error
	DeleteResource(ctx context.Context, id int64) error
}

// ResourceService defines the interface for study resource operations
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.ResourceCreateRequest) (*models.Resource, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	GetResources(ctx context.Context, filter *dto.ResourceFilter, includeInactive bool) ([]*models.Resource, error)
	UpdateResource(ctx context.Context, id int64, req *dto.ResourceUpdateRequest) (*models.Resource, error)
	ToggleResource(ctx context.Context, id int64, active bool) error
	DeleteResource(ctx context.Context, id int64) error
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl struct {
	resourceRepo ResourceStore
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo ResourceStore) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
	}
}

func parseResourceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(resourceDateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// CreateResource validates and stores a new study resource
func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.ResourceCreateRequest) (*models.Resource, error) {
	if !validation.IsValidResourceType(req.Type) {
		return nil, fmt.Errorf("%w: unknown resource type %q", apperrors.ErrValidationFailed, req.Type)
	}
	date, err := parseResourceDate(req.Date)
	if err != nil {
		return nil, err
	}

	resource := &models.Resource{
		Title:       strings.TrimSpace(req.Title),
		Type:        models.ResourceType(req.Type),
		Subject:     strings.TrimSpace(req.Subject),
		Description: req.Description,
		FileURL:     req.FileURL,
		Date:        date,
		IsActive:    true,
	}
	if req.Year != nil {
		resource.Year = *req.Year
	}

	id, err := s.resourceRepo.CreateResource(ctx, resource)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("resourceID", id).Str("type", req.Type).Msg("Resource created")
	return s.resourceRepo.GetResourceByID(ctx, id)
}

// GetResourceByID retrieves a single resource
func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetResourceByID(ctx, id)
}

// GetResources lists resources matching the filter. Public callers only see
// active resources; the admin panel passes includeInactive.
func (s *resourceServiceImpl) GetResources(ctx context.Context, filter *dto.ResourceFilter, includeInactive bool) ([]*models.Resource, error) {
	repoFilter := repositories.ResourceFilter{ActiveOnly: !includeInactive}
	if filter != nil {
		repoFilter.Type = models.ResourceType(filter.Type)
		repoFilter.Year = filter.Year
		repoFilter.Subject = strings.TrimSpace(filter.Subject)
	}
	return s.resourceRepo.GetResources(ctx, repoFilter)
}

// UpdateResource applies a partial update to a resource
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id int64, req *dto.ResourceUpdateRequest) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetResourceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resource.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Type != nil {
		if !validation.IsValidResourceType(*req.Type) {
			return nil, fmt.Errorf("%w: unknown resource type %q", apperrors.ErrValidationFailed, *req.Type)
		}
		resource.Type = models.ResourceType(*req.Type)
	}
	if req.Year != nil {
		resource.Year = *req.Year
	}
	if req.Subject != nil {
		resource.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.FileURL != nil {
		resource.FileURL = *req.FileURL
	}
	if req.Date != nil {
		date, err := parseResourceDate(*req.Date)
		if err != nil {
			return nil, err
		}
		resource.Date = date
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if err := s.resourceRepo.UpdateResource(ctx, resource); err != nil {
		return nil, err
	}
	return s.resourceRepo.GetResourceByID(ctx, id)
}

// ToggleResource flips a resource's public visibility
func (s *resourceServiceImpl) ToggleResource(ctx context.Context, id int64, active bool) error {
	return s.resourceRepo.SetActive(ctx, id, active)
}

// DeleteResource removes a resource record
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id int64) error {
	return s.resourceRepo.DeleteResource(ctx, id)
}
