package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/helpers"
	"github.com/kemumsa/backend/internal/pkg/logger"
	"github.com/kemumsa/backend/internal/pkg/validation"
)

// MessageStore is the persistence surface the message service depends on
type MessageStore interface {
	CreateMessage(ctx context.Context, message *models.Message) (int64, error)
	GetMessageByID(ctx context.Context, id int64) (*models.Message, error)
	GetMessagesByFolder(ctx context.Context, folder models.MessageFolder, offset, limit int) ([]*models.Message, int64, error)
	OpenMessage(ctx context.Context, id int64) (*models.Message, error)
	MarkMessageViewed(ctx context.Context, id int64) (*models.Message, error)
	ReplyToMessage(ctx context.Context, id int64, reply, repliedBy string) (*models.Message, error)
	SoftDeleteMessage(ctx context.Context, id int64) error
	GetMessageStats(ctx context.Context) (*dto.MessageStats, error)
}

// MessageService defines the interface for contact message operations
type MessageService interface {
	SubmitMessage(ctx context.Context, req *dto.MessageSubmitRequest, memberID *int64) (*models.Message, error)
	GetMessageByID(ctx context.Context, id int64) (*models.Message, error)
	ListMessages(ctx context.Context, folder string, page, size int) (*dto.MessageListResponse, error)
	OpenMessage(ctx context.Context, id int64) (*models.Message, error)
	MarkViewed(ctx context.Context, id int64) (*models.Message, error)
	ReplyToMessage(ctx context.Context, id int64, reply, repliedBy string) (*models.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*dto.MessageStats, error)
}

// messageServiceImpl implements the MessageService interface
type messageServiceImpl struct {
	messageRepo MessageStore
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo MessageStore) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
	}
}

// SubmitMessage validates and stores an incoming contact form message.
// New messages land in the inbox with status new.
func (s *messageServiceImpl) SubmitMessage(ctx context.Context, req *dto.MessageSubmitRequest, memberID *int64) (*models.Message, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("invalid email address")
	}

	category := req.Category
	if category == "" {
		category = "general"
	}
	if !validation.IsValidMessageCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, category)
	}

	message := &models.Message{
		Sender: models.MessageSender{
			Name:     strings.TrimSpace(req.Name),
			Email:    email,
			Phone:    strings.TrimSpace(req.Phone),
			MemberID: memberID,
		},
		Subject:    strings.TrimSpace(req.Subject),
		Body:       req.Message,
		Category:   category,
		Newsletter: req.Newsletter,
	}

	id, err := s.messageRepo.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("messageID", id).Str("category", category).Msg("Contact message received")
	return s.messageRepo.GetMessageByID(ctx, id)
}

// GetMessageByID retrieves a single non-deleted message
func (s *messageServiceImpl) GetMessageByID(ctx context.Context, id int64) (*models.Message, error) {
	return s.messageRepo.GetMessageByID(ctx, id)
}

// ListMessages pages through a folder. Deleted messages never appear.
func (s *messageServiceImpl) ListMessages(ctx context.Context, folder string, page, size int) (*dto.MessageListResponse, error) {
	var f models.MessageFolder
	switch models.MessageFolder(folder) {
	case models.FolderInbox, models.FolderViewed:
		f = models.MessageFolder(folder)
	default:
		return nil, fmt.Errorf("%w: unknown folder %q", apperrors.ErrValidationFailed, folder)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	messages, total, err := s.messageRepo.GetMessagesByFolder(ctx, f, int(offset), limit)
	if err != nil {
		return nil, err
	}

	pagination := helpers.NewPaginationInfo(total, page, limit)
	return &dto.MessageListResponse{
		Success:    true,
		Folder:     folder,
		Messages:   messages,
		Total:      total,
		Pagination: &pagination,
	}, nil
}

// OpenMessage marks a message viewed, moving it from the inbox to the
// viewed folder. Opening an already viewed message is a no-op.
func (s *messageServiceImpl) OpenMessage(ctx context.Context, id int64) (*models.Message, error) {
	return s.messageRepo.OpenMessage(ctx, id)
}

// MarkViewed forces a message into the viewed folder whatever its current
// status. Repeated calls are idempotent.
func (s *messageServiceImpl) MarkViewed(ctx context.Context, id int64) (*models.Message, error) {
	return s.messageRepo.MarkMessageViewed(ctx, id)
}

// ReplyToMessage attaches an admin reply and advances the message to replied
func (s *messageServiceImpl) ReplyToMessage(ctx context.Context, id int64, reply, repliedBy string) (*models.Message, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, apperrors.NewValidationError("reply message cannot be empty")
	}
	message, err := s.messageRepo.ReplyToMessage(ctx, id, reply, repliedBy)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("messageID", id).Str("repliedBy", repliedBy).Msg("Message replied")
	return message, nil
}

// DeleteMessage soft-deletes a viewed message. Inbox messages cannot be
// deleted before they are opened.
func (s *messageServiceImpl) DeleteMessage(ctx context.Context, id int64) error {
	return s.messageRepo.SoftDeleteMessage(ctx, id)
}

// GetStats counts non-deleted messages per workflow state
func (s *messageServiceImpl) GetStats(ctx context.Context) (*dto.MessageStats, error) {
	return s.messageRepo.GetMessageStats(ctx)
}
