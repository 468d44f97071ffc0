package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// MaxEventMediaFiles caps how many media files one upload request may carry
const MaxEventMediaFiles = 5

// eventDateLayout is the wire format for event dates
const eventDateLayout = "2006-01-02"

// EventStore is the persistence surface the event service depends on
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetEvents(ctx context.Context, activeOnly bool) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	AppendMedia(ctx context.Context, id int64, paths []string) error
	DeleteEvent(ctx context.Context, id int64) error
	CountEventsSince(ctx context.Context, since time.Time) (int64, error)
}

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.EventCreateRequest, image *multipart.FileHeader) (*models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetEvents(ctx context.Context, activeOnly bool) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventUpdateRequest) (*models.Event, error)
	AddMedia(ctx context.Context, id int64, files []*multipart.FileHeader) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo EventStore
	storage   filestorage.FileStorage
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventStore, storage filestorage.FileStorage) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		storage:   storage,
	}
}

func parseEventDate(value string) (time.Time, error) {
	date, err := time.Parse(eventDateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// CreateEvent validates and stores a new event, saving the cover image if
// one was uploaded
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.EventCreateRequest, image *multipart.FileHeader) (*models.Event, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
		Location:     req.Location,
		Category:     req.Category,
		Organizer:    req.Organizer,
		MaxAttendees: req.MaxAttendees,
		IsActive:     true,
		IsPast:       date.Before(time.Now().Truncate(24 * time.Hour)),
		Media:        []string{},
	}

	if image != nil {
		path, err := s.storage.SaveUpload(image, filestorage.KindEvent)
		if err != nil {
			return nil, err
		}
		event.Image = path
	}

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("eventID", id).Str("title", event.Title).Msg("Event created")
	return s.eventRepo.GetEventByID(ctx, id)
}

// GetEventByID retrieves a single event
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetEventByID(ctx, id)
}

// GetEvents lists events, optionally only active ones
func (s *eventServiceImpl) GetEvents(ctx context.Context, activeOnly bool) ([]*models.Event, error) {
	return s.eventRepo.GetEvents(ctx, activeOnly)
}

// UpdateEvent applies a partial update to an event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.EventUpdateRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Organizer != nil {
		event.Organizer = *req.Organizer
	}
	if req.MaxAttendees != nil {
		event.MaxAttendees = req.MaxAttendees
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	if req.IsPast != nil {
		event.IsPast = *req.IsPast
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return s.eventRepo.GetEventByID(ctx, id)
}

// AddMedia stores uploaded media files and appends their paths to the
// event's media list. The list is append-only.
func (s *eventServiceImpl) AddMedia(ctx context.Context, id int64, files []*multipart.FileHeader) (*models.Event, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("no media files provided")
	}
	if len(files) > MaxEventMediaFiles {
		return nil, fmt.Errorf("%w: at most %d media files per request", apperrors.ErrValidationFailed, MaxEventMediaFiles)
	}

	if _, err := s.eventRepo.GetEventByID(ctx, id); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := s.storage.SaveUpload(fh, filestorage.KindEvent)
		if err != nil {
			// Roll back files stored earlier in this batch
			for _, p := range paths {
				if delErr := s.storage.DeleteFile(p); delErr != nil {
					logger.Warn().Err(delErr).Str("path", p).Msg("Failed to clean up media file")
				}
			}
			return nil, err
		}
		paths = append(paths, path)
	}

	if err := s.eventRepo.AppendMedia(ctx, id, paths); err != nil {
		return nil, err
	}

	logger.Info().Int64("eventID", id).Int("count", len(paths)).Msg("Event media added")
	return s.eventRepo.GetEventByID(ctx, id)
}

// DeleteEvent removes an event and its stored media
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		return err
	}

	if event.Image != "" {
		if err := s.storage.DeleteFile(event.Image); err != nil {
			logger.Warn().Err(err).Int64("eventID", id).Msg("Failed to delete event image")
		}
	}
	for _, path := range event.Media {
		if err := s.storage.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to delete event media file")
		}
	}

	return nil
}
