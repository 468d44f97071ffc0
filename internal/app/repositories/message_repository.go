package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/models/dto"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

var messageColumns = []string{
	"id", "sender_name", "sender_email", "sender_phone", "member_id",
	"subject", "body", "category", "status", "folder",
	"reply_message", "replied_at", "replied_by", "newsletter",
	"viewed_at", "is_deleted", "deleted_at", "created_at", "updated_at",
}

// MessageRepository handles contact message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	m := &models.Message{}
	var replyMessage, repliedBy *string
	var repliedAt *time.Time
	err := row.Scan(
		&m.ID, &m.Sender.Name, &m.Sender.Email, &m.Sender.Phone, &m.Sender.MemberID,
		&m.Subject, &m.Body, &m.Category, &m.Status, &m.Folder,
		&replyMessage, &repliedAt, &repliedBy, &m.Newsletter,
		&m.ViewedAt, &m.IsDeleted, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if replyMessage != nil && repliedAt != nil {
		m.AdminReply = &models.AdminReply{
			Message:   *replyMessage,
			RepliedAt: *repliedAt,
		}
		if repliedBy != nil {
			m.AdminReply.RepliedBy = *repliedBy
		}
	}
	return m, nil
}

// CreateMessage stores a new contact message in the inbox and returns its ID
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) (int64, error) {
	sql, args, err := r.sb.Insert("messages").
		Columns("sender_name", "sender_email", "sender_phone", "member_id",
			"subject", "body", "category", "status", "folder", "newsletter").
		Values(message.Sender.Name, message.Sender.Email, message.Sender.Phone, message.Sender.MemberID,
			message.Subject, message.Body, message.Category, models.MessageStatusNew, models.FolderInbox, message.Newsletter).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create message query")
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return id, nil
}

// GetMessageByID retrieves a non-deleted message by ID
func (r *MessageRepository) GetMessageByID(ctx context.Context, id int64) (*models.Message, error) {
	sql, args, err := r.sb.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"id": id, "is_deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get message by ID SQL")
		return nil, fmt.Errorf("failed to build get message query: %w", err)
	}

	message, err := scanMessage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		logger.Error().Err(err).Int64("messageID", id).Msg("Error scanning message row")
		return nil, fmt.Errorf("error getting message by ID: %w", err)
	}

	return message, nil
}

// GetMessagesByFolder retrieves non-deleted messages in a folder, newest
// first, with the total count for pagination.
func (r *MessageRepository) GetMessagesByFolder(ctx context.Context, folder models.MessageFolder, offset, limit int) ([]*models.Message, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("messages").
		Where(squirrel.Eq{"folder": folder, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count messages query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting messages")
		return nil, 0, fmt.Errorf("error counting messages: %w", err)
	}

	sql, args, err := r.sb.Select(messageColumns...).
		From("messages").
		Where(squirrel.Eq{"folder": folder, "is_deleted": false}).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get messages SQL")
		return nil, 0, fmt.Errorf("failed to build get messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get messages query")
		return nil, 0, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning message row")
			return nil, 0, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating message rows")
		return nil, 0, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, total, nil
}

// OpenMessage moves a new message to the viewed folder in a single
// statement, recording when it was first seen. Opening an already viewed
// message is a no-op; either way the current row is returned.
func (r *MessageRepository) OpenMessage(ctx context.Context, id int64) (*models.Message, error) {
	const sql = `
		UPDATE messages
		SET status = 'viewed', folder = 'viewed', viewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'new' AND NOT is_deleted`

	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error opening message")
		return nil, fmt.Errorf("error opening message: %w", err)
	}

	return r.GetMessageByID(ctx, id)
}

// MarkMessageViewed forces a message into the viewed folder regardless of
// its current status. Calling it repeatedly leaves the row unchanged beyond
// the updated_at bump.
func (r *MessageRepository) MarkMessageViewed(ctx context.Context, id int64) (*models.Message, error) {
	const sql = `
		UPDATE messages
		SET status = 'viewed', folder = 'viewed',
		    viewed_at = COALESCE(viewed_at, NOW()), updated_at = NOW()
		WHERE id = $1 AND NOT is_deleted`

	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error marking message viewed")
		return nil, fmt.Errorf("error marking message viewed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrMessageNotFound
	}

	return r.GetMessageByID(ctx, id)
}

// ReplyToMessage attaches a reply and advances the message to replied.
// Replying to an unopened message also records the first-view time so the
// folder invariant holds.
func (r *MessageRepository) ReplyToMessage(ctx context.Context, id int64, reply, repliedBy string) (*models.Message, error) {
	const sql = `
		UPDATE messages
		SET status = 'replied', folder = 'viewed',
		    reply_message = $1, replied_at = NOW(), replied_by = $2,
		    viewed_at = COALESCE(viewed_at, NOW()), updated_at = NOW()
		WHERE id = $3 AND NOT is_deleted`

	cmdTag, err := r.db.Exec(ctx, sql, reply, repliedBy, id)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error replying to message")
		return nil, fmt.Errorf("error replying to message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrMessageNotFound
	}

	return r.GetMessageByID(ctx, id)
}

// SoftDeleteMessage marks a viewed message as deleted. Messages still in the
// inbox cannot be deleted; they have to be opened first.
func (r *MessageRepository) SoftDeleteMessage(ctx context.Context, id int64) error {
	const sql = `
		UPDATE messages
		SET is_deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND folder = 'viewed' AND NOT is_deleted`

	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error deleting message")
		return fmt.Errorf("error deleting message: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing message from one still sitting in the inbox.
	if _, err := r.GetMessageByID(ctx, id); err != nil {
		return err
	}
	return apperrors.ErrMessageNotInTrash
}

// GetMessageStats counts non-deleted messages per workflow state
func (r *MessageRepository) GetMessageStats(ctx context.Context) (*dto.MessageStats, error) {
	const sql = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'viewed'),
			COUNT(*) FILTER (WHERE status = 'replied'),
			COUNT(*)
		FROM messages
		WHERE NOT is_deleted`

	stats := &dto.MessageStats{}
	err := r.db.QueryRow(ctx, sql).Scan(&stats.New, &stats.Viewed, &stats.Replied, &stats.Total)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying message stats")
		return nil, fmt.Errorf("error querying message stats: %w", err)
	}

	return stats, nil
}
