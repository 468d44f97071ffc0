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
	"github.com/kemumsa/backend/internal/pkg/auth"
	"github.com/kemumsa/backend/internal/pkg/filestorage"
)

// mockMemberStore is an in-memory MemberStore keyed by ID with a unique
// email constraint, matching the members table.
type mockMemberStore struct {
	members map[int64]*models.Member
	nextID  int64
}

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{members: make(map[int64]*models.Member), nextID: 1}
}

func (m *mockMemberStore) CreateMember(_ context.Context, member *models.Member) (int64, error) {
	for _, existing := range m.members {
		if existing.Email == member.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	stored := *member
	stored.ID = m.nextID
	stored.JoinedAt = time.Now()
	m.members[stored.ID] = &stored
	m.nextID++
	return stored.ID, nil
}

func (m *mockMemberStore) GetMemberByID(_ context.Context, id int64) (*models.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (m *mockMemberStore) GetMemberByEmail(_ context.Context, email string) (*models.Member, error) {
	for _, member := range m.members {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (m *mockMemberStore) GetVisibleMembers(_ context.Context) ([]*models.Member, error) {
	var visible []*models.Member
	for _, member := range m.members {
		if member.Approved && member.ProfileVisible && member.IsActive {
			copied := *member
			visible = append(visible, &copied)
		}
	}
	return visible, nil
}

func (m *mockMemberStore) GetAllMembers(_ context.Context) ([]*models.Member, error) {
	var all []*models.Member
	for _, member := range m.members {
		copied := *member
		all = append(all, &copied)
	}
	return all, nil
}

func (m *mockMemberStore) UpdateMember(_ context.Context, member *models.Member) error {
	if _, ok := m.members[member.ID]; !ok {
		return apperrors.ErrMemberNotFound
	}
	copied := *member
	m.members[member.ID] = &copied
	return nil
}

func (m *mockMemberStore) UpdateStatus(_ context.Context, id int64, status models.PresenceStatus) error {
	member, ok := m.members[id]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	member.Status = status
	return nil
}

func (m *mockMemberStore) DeleteMember(_ context.Context, id int64) error {
	if _, ok := m.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	delete(m.members, id)
	return nil
}

func (m *mockMemberStore) GetDirectoryStats(_ context.Context) (*dto.DirectoryStats, error) {
	return &dto.DirectoryStats{MemberYears: []int{}}, nil
}

func (m *mockMemberStore) GetAdminStats(_ context.Context) (*dto.AdminMemberStats, error) {
	stats := &dto.AdminMemberStats{}
	for _, member := range m.members {
		stats.TotalMembers++
		if member.Approved {
			stats.ApprovedMembers++
		} else {
			stats.PendingMembers++
		}
		if member.IsActive {
			stats.ActiveMembers++
		}
	}
	return stats, nil
}

// noopStorage satisfies filestorage.FileStorage without touching disk
type noopStorage struct{}

func (noopStorage) SaveUpload(_ *multipart.FileHeader, _ filestorage.UploadKind) (string, error) {
	return "/uploads/avatars/test.png", nil
}

func (noopStorage) DeleteFile(_ string) error { return nil }

func newTestMemberService(store MemberStore) MemberService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "kemumsa.test",
	})
	return NewMemberService(store, jwtService, noopStorage{})
}

func registerTestMember(t *testing.T, svc MemberService) *models.Member {
	t.Helper()
	member, err := svc.Register(context.Background(), &dto.MemberRegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@stu.kemu.ac.ke",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	return member
}

func TestRegister_StartsUnapproved(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())

	member := registerTestMember(t, svc)
	assert.False(t, member.Approved)
	assert.True(t, member.ProfileVisible)
	assert.True(t, member.IsActive)
	assert.Equal(t, models.PresenceOffline, member.Status)
	assert.NotEqual(t, "s3cret-pass", member.Password)
}

func TestRegister_RejectsNonStudentEmail(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())

	_, err := svc.Register(context.Background(), &dto.MemberRegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@gmail.com",
		Password:  "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmailDomain)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())

	_, err := svc.Register(context.Background(), &dto.MemberRegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@stu.kemu.ac.ke",
		Password:  "short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	registerTestMember(t, svc)

	_, err := svc.Register(context.Background(), &dto.MemberRegisterRequest{
		FirstName: "Janet",
		LastName:  "Doe",
		Email:     "Jane.Doe@stu.kemu.ac.ke", // same address, different case
		Password:  "another-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin_PendingApproval(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	registerTestMember(t, svc)

	_, err := svc.Login(context.Background(), "jane.doe@stu.kemu.ac.ke", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrMemberNotApproved)
}

func TestLogin_AfterApproval(t *testing.T) {
	store := newMockMemberStore()
	svc := newTestMemberService(store)
	member := registerTestMember(t, svc)

	_, err := svc.ApproveMember(context.Background(), member.ID)
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), "jane.doe@stu.kemu.ac.ke", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, models.PresenceOnline, resp.User.Status)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	_, err := svc.ApproveMember(context.Background(), member.ID)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane.doe@stu.kemu.ac.ke", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@stu.kemu.ac.ke", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestApproveMember_Idempotent(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	approved, err := svc.ApproveMember(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	again, err := svc.ApproveMember(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, again.Approved)
}

func TestUpdateMember_PartialPatch(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	phone := "+254700000001"
	hidden := false
	updated, err := svc.UpdateMember(context.Background(), member.ID, &dto.MemberUpdateRequest{
		Phone:          &phone,
		ProfileVisible: &hidden,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.False(t, updated.ProfileVisible)
	// Untouched fields survive the patch
	assert.Equal(t, "Jane", updated.FirstName)
}

func TestUpdateMember_InvalidYear(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	year := 9
	_, err := svc.UpdateMember(context.Background(), member.ID, &dto.MemberUpdateRequest{
		YearOfStudy: &year,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetDirectory_OnlyVisibleApproved(t *testing.T) {
	store := newMockMemberStore()
	svc := newTestMemberService(store)
	member := registerTestMember(t, svc)

	// Unapproved members never appear in the directory
	dir, err := svc.GetDirectory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dir.Members)

	_, err = svc.ApproveMember(context.Background(), member.ID)
	require.NoError(t, err)

	dir, err = svc.GetDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, dir.Members, 1)
	assert.Equal(t, member.ID, dir.Members[0].ID)
}

func TestUpdateStatus_ValidatesEnum(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	require.NoError(t, svc.UpdateStatus(context.Background(), member.ID, "away"))
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), member.ID, "busy"), apperrors.ErrValidationFailed)
}

func TestVerifyPassword(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	member := registerTestMember(t, svc)

	ok, err := svc.VerifyPassword(context.Background(), member.ID, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyPassword(context.Background(), member.ID, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteMember_NotFound(t *testing.T) {
	svc := newTestMemberService(newMockMemberStore())
	err := svc.DeleteMember(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}
