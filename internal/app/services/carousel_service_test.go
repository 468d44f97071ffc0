package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
)

// mockCarouselStore keeps carousel images in memory
type mockCarouselStore struct {
	images map[int64]*models.CarouselImage
	nextID int64
}

func newMockCarouselStore() *mockCarouselStore {
	return &mockCarouselStore{images: map[int64]*models.CarouselImage{}, nextID: 1}
}

func (m *mockCarouselStore) CreateCarouselImage(_ context.Context, img *models.CarouselImage) (int64, error) {
	id := m.nextID
	m.nextID++
	copied := *img
	copied.ID = id
	m.images[id] = &copied
	return id, nil
}

func (m *mockCarouselStore) GetCarouselImageByID(_ context.Context, id int64) (*models.CarouselImage, error) {
	img, ok := m.images[id]
	if !ok {
		return nil, apperrors.ErrCarouselNotFound
	}
	copied := *img
	return &copied, nil
}

func (m *mockCarouselStore) GetCarouselImages(_ context.Context, activeOnly bool, imageType string) ([]*models.CarouselImage, error) {
	result := []*models.CarouselImage{}
	for id := int64(1); id < m.nextID; id++ {
		img, ok := m.images[id]
		if !ok {
			continue
		}
		if activeOnly && !img.Active {
			continue
		}
		if imageType != "" && string(img.ImageType) != imageType {
			continue
		}
		copied := *img
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockCarouselStore) UpdateCarouselImage(_ context.Context, img *models.CarouselImage) error {
	if _, ok := m.images[img.ID]; !ok {
		return apperrors.ErrCarouselNotFound
	}
	copied := *img
	m.images[img.ID] = &copied
	return nil
}

func (m *mockCarouselStore) DeleteCarouselImage(_ context.Context, id int64) error {
	if _, ok := m.images[id]; !ok {
		return apperrors.ErrCarouselNotFound
	}
	delete(m.images, id)
	return nil
}

func TestCreateImage_FromExternalURL(t *testing.T) {
	svc := NewCarouselService(newMockCarouselStore(), noopStorage{})

	img, err := svc.CreateImage(context.Background(), &dto.CarouselCreateRequest{
		Title:    "Welcome week",
		ImageURL: "https://cdn.kemumsa.org/welcome.jpg",
	}, nil, "admin")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.kemumsa.org/welcome.jpg", img.ImageURL)
	assert.Equal(t, models.CarouselTypeActivity, img.ImageType)
	assert.Equal(t, models.AspectLandscape, img.AspectRatio)
	assert.True(t, img.Active)
	assert.Equal(t, "admin", img.UploadedBy)
}

func TestCreateImage_RequiresFileOrURL(t *testing.T) {
	svc := NewCarouselService(newMockCarouselStore(), noopStorage{})

	_, err := svc.CreateImage(context.Background(), &dto.CarouselCreateRequest{Title: "Empty"}, nil, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetImages_FiltersByActiveAndType(t *testing.T) {
	svc := NewCarouselService(newMockCarouselStore(), noopStorage{})

	seed := []dto.CarouselCreateRequest{
		{Title: "Gala night", ImageURL: "https://cdn.kemumsa.org/gala.jpg", ImageType: "event"},
		{Title: "Study group", ImageURL: "https://cdn.kemumsa.org/study.jpg", ImageType: "student"},
		{Title: "Sports day", ImageURL: "https://cdn.kemumsa.org/sports.jpg", ImageType: "event"},
	}
	for i := range seed {
		_, err := svc.CreateImage(context.Background(), &seed[i], nil, "admin")
		require.NoError(t, err)
	}

	// Deactivate one event image
	_, err := svc.ToggleImage(context.Background(), 3)
	require.NoError(t, err)

	active, err := svc.GetImages(context.Background(), true, "")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := svc.GetImages(context.Background(), false, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	events, err := svc.GetImages(context.Background(), true, "event")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Gala night", events[0].Title)
}

func TestToggleImage_FlipsActiveFlag(t *testing.T) {
	svc := NewCarouselService(newMockCarouselStore(), noopStorage{})

	created, err := svc.CreateImage(context.Background(), &dto.CarouselCreateRequest{
		Title:    "Clinic visit",
		ImageURL: "https://cdn.kemumsa.org/clinic.jpg",
	}, nil, "admin")
	require.NoError(t, err)
	require.True(t, created.Active)

	toggled, err := svc.ToggleImage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	again, err := svc.ToggleImage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.Active)

	_, err = svc.ToggleImage(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCarouselNotFound)
}

func TestUpdateImage_PartialPatch(t *testing.T) {
	svc := NewCarouselService(newMockCarouselStore(), noopStorage{})

	created, err := svc.CreateImage(context.Background(), &dto.CarouselCreateRequest{
		Title:       "Original",
		Description: "Before",
		ImageURL:    "https://cdn.kemumsa.org/orig.jpg",
	}, nil, "admin")
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.UpdateImage(context.Background(), created.ID, &dto.CarouselUpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Before", updated.Description)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}
