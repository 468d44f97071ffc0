package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
)

// mockEventStore is an in-memory EventStore
type mockEventStore struct {
	events map[int64]*models.Event
	nextID int64
}

func newMockEventStore() *mockEventStore {
	return &mockEventStore{events: make(map[int64]*models.Event), nextID: 1}
}

func (m *mockEventStore) CreateEvent(_ context.Context, event *models.Event) (int64, error) {
	stored := *event
	stored.ID = m.nextID
	m.events[stored.ID] = &stored
	m.nextID++
	return stored.ID, nil
}

func (m *mockEventStore) GetEventByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (m *mockEventStore) GetEvents(_ context.Context, activeOnly bool) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range m.events {
		if activeOnly && !event.IsActive {
			continue
		}
		copied := *event
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockEventStore) UpdateEvent(_ context.Context, event *models.Event) error {
	if _, ok := m.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *mockEventStore) AppendMedia(_ context.Context, id int64, paths []string) error {
	event, ok := m.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	event.Media = append(event.Media, paths...)
	return nil
}

func (m *mockEventStore) DeleteEvent(_ context.Context, id int64) error {
	if _, ok := m.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *mockEventStore) CountEventsSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, event := range m.events {
		if event.Date.After(since) || event.Date.Equal(since) {
			count++
		}
	}
	return count, nil
}

func TestCreateEvent_ParsesDateAndFlagsPast(t *testing.T) {
	svc := NewEventService(newMockEventStore(), noopStorage{})

	past, err := svc.CreateEvent(context.Background(), &dto.EventCreateRequest{
		Title: "Annual Dinner",
		Date:  "2020-06-15",
	}, nil)
	require.NoError(t, err)
	assert.True(t, past.IsPast)
	assert.Equal(t, 2020, past.Date.Year())
	assert.True(t, past.IsActive)
	assert.NotNil(t, past.Media)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	upcoming, err := svc.CreateEvent(context.Background(), &dto.EventCreateRequest{
		Title: "Health Camp",
		Date:  future,
	}, nil)
	require.NoError(t, err)
	assert.False(t, upcoming.IsPast)
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	svc := NewEventService(newMockEventStore(), noopStorage{})

	_, err := svc.CreateEvent(context.Background(), &dto.EventCreateRequest{
		Title: "Bad Date",
		Date:  "15/06/2026",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEvent_PartialPatch(t *testing.T) {
	svc := NewEventService(newMockEventStore(), noopStorage{})

	event, err := svc.CreateEvent(context.Background(), &dto.EventCreateRequest{
		Title:    "Seminar",
		Date:     "2026-09-01",
		Location: "Main Hall",
	}, nil)
	require.NoError(t, err)

	title := "Research Seminar"
	updated, err := svc.UpdateEvent(context.Background(), event.ID, &dto.EventUpdateRequest{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Research Seminar", updated.Title)
	assert.Equal(t, "Main Hall", updated.Location)
}

func TestAddMedia_Limits(t *testing.T) {
	svc := NewEventService(newMockEventStore(), noopStorage{})

	event, err := svc.CreateEvent(context.Background(), &dto.EventCreateRequest{
		Title: "Gallery Event",
		Date:  "2026-09-01",
	}, nil)
	require.NoError(t, err)

	_, err = svc.AddMedia(context.Background(), event.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	tooMany := make([]*multipart.FileHeader, MaxEventMediaFiles+1)
	for i := range tooMany {
		tooMany[i] = &multipart.FileHeader{Filename: "photo.jpg"}
	}
	_, err = svc.AddMedia(context.Background(), event.ID, tooMany)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	files := []*multipart.FileHeader{{Filename: "photo.jpg"}, {Filename: "group.jpg"}}
	updated, err := svc.AddMedia(context.Background(), event.ID, files)
	require.NoError(t, err)
	assert.Len(t, updated.Media, 2)

	// The media list is append-only
	updated, err = svc.AddMedia(context.Background(), event.ID, files[:1])
	require.NoError(t, err)
	assert.Len(t, updated.Media, 3)
}

func TestAddMedia_UnknownEvent(t *testing.T) {
	svc := NewEventService(newMockEventStore(), noopStorage{})

	_, err := svc.AddMedia(context.Background(), 404, []*multipart.FileHeader{{Filename: "photo.jpg"}})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
