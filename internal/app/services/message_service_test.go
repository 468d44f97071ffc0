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
)

// mockMessageStore is an in-memory MessageStore that mimics the repository's
// workflow guarantees: messages are created in the inbox with status new,
// opening moves them to viewed, and deletion is only allowed from viewed.
type mockMessageStore struct {
	messages map[int64]*models.Message
	nextID   int64
}

func newMockMessageStore() *mockMessageStore {
	return &mockMessageStore{messages: make(map[int64]*models.Message), nextID: 1}
}

func (m *mockMessageStore) CreateMessage(_ context.Context, message *models.Message) (int64, error) {
	stored := *message
	stored.ID = m.nextID
	stored.Status = models.MessageStatusNew
	stored.Folder = models.FolderInbox
	stored.CreatedAt = time.Now()
	m.messages[stored.ID] = &stored
	m.nextID++
	return stored.ID, nil
}

func (m *mockMessageStore) GetMessageByID(_ context.Context, id int64) (*models.Message, error) {
	msg, ok := m.messages[id]
	if !ok || msg.IsDeleted {
		return nil, apperrors.ErrMessageNotFound
	}
	copied := *msg
	return &copied, nil
}

func (m *mockMessageStore) GetMessagesByFolder(_ context.Context, folder models.MessageFolder, offset, limit int) ([]*models.Message, int64, error) {
	var matched []*models.Message
	for _, msg := range m.messages {
		if msg.Folder == folder && !msg.IsDeleted {
			copied := *msg
			matched = append(matched, &copied)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockMessageStore) OpenMessage(_ context.Context, id int64) (*models.Message, error) {
	msg, ok := m.messages[id]
	if !ok || msg.IsDeleted {
		return nil, apperrors.ErrMessageNotFound
	}
	if msg.Status == models.MessageStatusNew {
		now := time.Now()
		msg.Status = models.MessageStatusViewed
		msg.Folder = models.FolderViewed
		msg.ViewedAt = &now
	}
	copied := *msg
	return &copied, nil
}

func (m *mockMessageStore) MarkMessageViewed(_ context.Context, id int64) (*models.Message, error) {
	msg, ok := m.messages[id]
	if !ok || msg.IsDeleted {
		return nil, apperrors.ErrMessageNotFound
	}
	msg.Status = models.MessageStatusViewed
	msg.Folder = models.FolderViewed
	if msg.ViewedAt == nil {
		now := time.Now()
		msg.ViewedAt = &now
	}
	copied := *msg
	return &copied, nil
}

func (m *mockMessageStore) ReplyToMessage(_ context.Context, id int64, reply, repliedBy string) (*models.Message, error) {
	msg, ok := m.messages[id]
	if !ok || msg.IsDeleted {
		return nil, apperrors.ErrMessageNotFound
	}
	now := time.Now()
	msg.Status = models.MessageStatusReplied
	msg.Folder = models.FolderViewed
	if msg.ViewedAt == nil {
		msg.ViewedAt = &now
	}
	msg.AdminReply = &models.AdminReply{Message: reply, RepliedAt: now, RepliedBy: repliedBy}
	copied := *msg
	return &copied, nil
}

func (m *mockMessageStore) SoftDeleteMessage(_ context.Context, id int64) error {
	msg, ok := m.messages[id]
	if !ok || msg.IsDeleted {
		return apperrors.ErrMessageNotFound
	}
	if msg.Folder != models.FolderViewed {
		return apperrors.ErrMessageNotInTrash
	}
	now := time.Now()
	msg.IsDeleted = true
	msg.DeletedAt = &now
	return nil
}

func (m *mockMessageStore) GetMessageStats(_ context.Context) (*dto.MessageStats, error) {
	stats := &dto.MessageStats{}
	for _, msg := range m.messages {
		if msg.IsDeleted {
			continue
		}
		stats.Total++
		switch msg.Status {
		case models.MessageStatusNew:
			stats.New++
		case models.MessageStatusViewed:
			stats.Viewed++
		case models.MessageStatusReplied:
			stats.Replied++
		}
	}
	return stats, nil
}

func submitTestMessage(t *testing.T, svc MessageService) *models.Message {
	t.Helper()
	msg, err := svc.SubmitMessage(context.Background(), &dto.MessageSubmitRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Membership question",
		Message: "How do I join?",
	}, nil)
	require.NoError(t, err)
	return msg
}

func TestSubmitMessage_DefaultsToInbox(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())

	msg := submitTestMessage(t, svc)
	assert.Equal(t, models.MessageStatusNew, msg.Status)
	assert.Equal(t, models.FolderInbox, msg.Folder)
	assert.Equal(t, "general", msg.Category)
	assert.Nil(t, msg.ViewedAt)
}

func TestSubmitMessage_InvalidEmail(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())

	_, err := svc.SubmitMessage(context.Background(), &dto.MessageSubmitRequest{
		Name:    "Jane",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubmitMessage_UnknownCategory(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())

	_, err := svc.SubmitMessage(context.Background(), &dto.MessageSubmitRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Subject:  "Hi",
		Message:  "Hello",
		Category: "spam",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestOpenMessage_MovesToViewed(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())
	msg := submitTestMessage(t, svc)

	opened, err := svc.OpenMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusViewed, opened.Status)
	assert.Equal(t, models.FolderViewed, opened.Folder)
	require.NotNil(t, opened.ViewedAt)

	// Re-opening is a no-op and keeps the original viewed timestamp
	reopened, err := svc.OpenMessage(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusViewed, reopened.Status)
	assert.Equal(t, opened.ViewedAt.Unix(), reopened.ViewedAt.Unix())
}

func TestMarkViewed_ForcesViewedFolder(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())
	msg := submitTestMessage(t, svc)

	marked, err := svc.MarkViewed(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusViewed, marked.Status)
	assert.Equal(t, models.FolderViewed, marked.Folder)
	require.NotNil(t, marked.ViewedAt)

	again, err := svc.MarkViewed(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, marked.ViewedAt.Unix(), again.ViewedAt.Unix())

	_, err = svc.MarkViewed(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestReplyToMessage_SetsReplied(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())
	msg := submitTestMessage(t, svc)

	replied, err := svc.ReplyToMessage(context.Background(), msg.ID, "Welcome aboard!", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusReplied, replied.Status)
	assert.Equal(t, models.FolderViewed, replied.Folder)
	require.NotNil(t, replied.AdminReply)
	assert.Equal(t, "Welcome aboard!", replied.AdminReply.Message)
	assert.Equal(t, "admin", replied.AdminReply.RepliedBy)
	assert.NotNil(t, replied.ViewedAt)
}

func TestReplyToMessage_EmptyReply(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())
	msg := submitTestMessage(t, svc)

	_, err := svc.ReplyToMessage(context.Background(), msg.ID, "   ", "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteMessage_RequiresViewedFolder(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())
	msg := submitTestMessage(t, svc)

	// Inbox messages cannot be deleted before being opened
	err := svc.DeleteMessage(context.Background(), msg.ID)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotInTrash)

	_, err = svc.OpenMessage(context.Background(), msg.ID)
	require.NoError(t, err)

	err = svc.DeleteMessage(context.Background(), msg.ID)
	require.NoError(t, err)

	// Deleted messages disappear from reads
	_, err = svc.GetMessageByID(context.Background(), msg.ID)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)

	// Double deletion reports not found
	err = svc.DeleteMessage(context.Background(), msg.ID)
	assert.ErrorIs(t, err, apperrors.ErrMessageNotFound)
}

func TestListMessages_UnknownFolder(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())

	_, err := svc.ListMessages(context.Background(), "archive", 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListMessages_FolderSeparation(t *testing.T) {
	store := newMockMessageStore()
	svc := NewMessageService(store)

	first := submitTestMessage(t, svc)
	submitTestMessage(t, svc)

	_, err := svc.OpenMessage(context.Background(), first.ID)
	require.NoError(t, err)

	inbox, err := svc.ListMessages(context.Background(), "inbox", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inbox.Total)

	viewed, err := svc.ListMessages(context.Background(), "viewed", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), viewed.Total)
	require.NotNil(t, viewed.Pagination)
	assert.Equal(t, 1, viewed.Pagination.CurrentPage)
}

func TestGetStats_CountsPerStatus(t *testing.T) {
	svc := NewMessageService(newMockMessageStore())

	first := submitTestMessage(t, svc)
	second := submitTestMessage(t, svc)
	submitTestMessage(t, svc)

	_, err := svc.OpenMessage(context.Background(), first.ID)
	require.NoError(t, err)
	_, err = svc.ReplyToMessage(context.Background(), second.ID, "Thanks!", "admin")
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.New)
	assert.Equal(t, int64(1), stats.Viewed)
	assert.Equal(t, int64(1), stats.Replied)
	assert.Equal(t, int64(3), stats.Total)
}
