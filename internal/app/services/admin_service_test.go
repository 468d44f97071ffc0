package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/auth"
)

// mockAdminStore is an in-memory AdminStore with a unique username constraint
type mockAdminStore struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newMockAdminStore() *mockAdminStore {
	return &mockAdminStore{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (m *mockAdminStore) CreateAdmin(_ context.Context, admin *models.Admin) error {
	for _, existing := range m.admins {
		if existing.Username == admin.Username {
			return nil // insert is a no-op on conflict
		}
	}
	stored := *admin
	stored.ID = m.nextID
	m.admins[stored.ID] = &stored
	m.nextID++
	return nil
}

func (m *mockAdminStore) GetAdminByID(_ context.Context, id int64) (*models.Admin, error) {
	admin, ok := m.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (m *mockAdminStore) GetAdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, admin := range m.admins {
		if admin.Username == username {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (m *mockAdminStore) UpdateCredentials(_ context.Context, id int64, username, passwordHash string) error {
	for otherID, other := range m.admins {
		if otherID != id && other.Username == username {
			return apperrors.ErrUsernameTaken
		}
	}
	admin, ok := m.admins[id]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	admin.Username = username
	admin.Password = passwordHash
	return nil
}

func (m *mockAdminStore) RecordLogin(_ context.Context, id int64) error {
	admin, ok := m.admins[id]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	now := time.Now()
	admin.LastLogin = &now
	return nil
}

// mockCommunicationStore holds at most the singleton row
type mockCommunicationStore struct {
	stored *models.Communication
}

func (m *mockCommunicationStore) GetCommunication(_ context.Context) (*models.Communication, error) {
	if m.stored == nil {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *m.stored
	return &copied, nil
}

func (m *mockCommunicationStore) UpsertCommunication(_ context.Context, c *models.Communication) error {
	copied := *c
	copied.ID = models.CommunicationSingletonID
	copied.UpdatedAt = time.Now()
	m.stored = &copied
	return nil
}

func newTestAdminService(t *testing.T, adminStore *mockAdminStore, commStore *mockCommunicationStore) AdminService {
	t.Helper()
	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, adminStore.CreateAdmin(context.Background(), &models.Admin{
		Username: "admin",
		Password: hash,
		Email:    "admin@kemumsa.org",
		Role:     models.RoleAdmin,
	}))

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "kemumsa.test",
	})
	return NewAdminService(adminStore, commStore, jwtService)
}

func TestAdminLogin(t *testing.T) {
	store := newMockAdminStore()
	svc := newTestAdminService(t, store, &mockCommunicationStore{})

	resp, err := svc.Login(context.Background(), "admin", "admin-pass")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Admin.Username)
	assert.Equal(t, "admin", resp.Admin.Role)

	// Login timestamps the account
	admin, err := store.GetAdminByID(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, admin.LastLogin)
}

func TestAdminLogin_BadCredentials(t *testing.T) {
	svc := newTestAdminService(t, newMockAdminStore(), &mockCommunicationStore{})

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "admin-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfile_ChangesCredentials(t *testing.T) {
	svc := newTestAdminService(t, newMockAdminStore(), &mockCommunicationStore{})

	admin, err := svc.UpdateProfile(context.Background(), 1, &dto.AdminProfileUpdateRequest{
		NewUsername:     "chairperson",
		CurrentPassword: "admin-pass",
		NewPassword:     "new-pass-123",
		ConfirmPassword: "new-pass-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "chairperson", admin.Username)

	_, err = svc.Login(context.Background(), "chairperson", "new-pass-123")
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), "chairperson", "admin-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	svc := newTestAdminService(t, newMockAdminStore(), &mockCommunicationStore{})

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.AdminProfileUpdateRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
		ConfirmPassword: "new-pass-123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateProfile_ConfirmationMismatch(t *testing.T) {
	svc := newTestAdminService(t, newMockAdminStore(), &mockCommunicationStore{})

	_, err := svc.UpdateProfile(context.Background(), 1, &dto.AdminProfileUpdateRequest{
		CurrentPassword: "admin-pass",
		NewPassword:     "new-pass-123",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetCommunication_DefaultFallback(t *testing.T) {
	commStore := &mockCommunicationStore{}
	svc := newTestAdminService(t, newMockAdminStore(), commStore)

	comm, err := svc.GetCommunication(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCommunication().Email, comm.Email)

	// The fallback is served, never written
	assert.Nil(t, commStore.stored)
}

func TestUpdateCommunication_MergesOverCurrent(t *testing.T) {
	commStore := &mockCommunicationStore{}
	svc := newTestAdminService(t, newMockAdminStore(), commStore)

	email := "Contact@KEMUMSA.org"
	updated, err := svc.UpdateCommunication(context.Background(), &dto.CommunicationUpdateRequest{
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "contact@kemumsa.org", updated.Email)
	// Untouched fields carry over from the defaults
	assert.Equal(t, models.DefaultCommunication().Phone, updated.Phone)

	phone := "+254711111111"
	updated, err = svc.UpdateCommunication(context.Background(), &dto.CommunicationUpdateRequest{
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	// The earlier patch survives the second one
	assert.Equal(t, "contact@kemumsa.org", updated.Email)
}
