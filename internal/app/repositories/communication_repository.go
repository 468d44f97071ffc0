package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

// CommunicationRepository handles the contact-settings singleton row
type CommunicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunicationRepository creates a new CommunicationRepository
func NewCommunicationRepository(db *pgxpool.Pool) *CommunicationRepository {
	return &CommunicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetCommunication fetches the singleton contact settings row.
// Returns ErrResourceNotFound when nothing has been stored yet.
func (r *CommunicationRepository) GetCommunication(ctx context.Context) (*models.Communication, error) {
	sql, args, err := r.sb.Select("id", "email", "phone", "office", "office_hours",
		"response_time", "address", "social_media", "additional_info", "updated_at").
		From("communication_settings").
		Where(squirrel.Eq{"id": models.CommunicationSingletonID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get communication SQL")
		return nil, fmt.Errorf("failed to build get communication query: %w", err)
	}

	c := &models.Communication{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.Email, &c.Phone, &c.Office, &c.OfficeHours,
		&c.ResponseTime, &c.Address, &c.SocialMedia, &c.AdditionalInfo, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error scanning communication row")
		return nil, fmt.Errorf("error getting communication settings: %w", err)
	}

	return c, nil
}

// UpsertCommunication writes the full contact settings under the fixed
// singleton key. Concurrent writers race safely; the last statement wins.
func (r *CommunicationRepository) UpsertCommunication(ctx context.Context, c *models.Communication) error {
	const sql = `
		INSERT INTO communication_settings
			(id, email, phone, office, office_hours, response_time, address, social_media, additional_info, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			office = EXCLUDED.office,
			office_hours = EXCLUDED.office_hours,
			response_time = EXCLUDED.response_time,
			address = EXCLUDED.address,
			social_media = EXCLUDED.social_media,
			additional_info = EXCLUDED.additional_info,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, sql,
		models.CommunicationSingletonID, c.Email, c.Phone, c.Office, c.OfficeHours,
		c.ResponseTime, c.Address, c.SocialMedia, c.AdditionalInfo,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error upserting communication settings")
		return fmt.Errorf("error upserting communication settings: %w", err)
	}

	return nil
}
