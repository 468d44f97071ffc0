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

var executiveColumns = []string{
	"id", "first_name", "last_name", "position", "email", "phone",
	"year_of_study", "image_url", "social_media", "is_active", "created_at",
}

// ExecutiveRepository handles executive database operations
type ExecutiveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExecutiveRepository creates a new ExecutiveRepository
func NewExecutiveRepository(db *pgxpool.Pool) *ExecutiveRepository {
	return &ExecutiveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanExecutive(row pgx.Row) (*models.Executive, error) {
	e := &models.Executive{}
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Email, &e.Phone,
		&e.YearOfStudy, &e.ImageURL, &e.SocialMedia, &e.IsActive, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// CreateExecutive inserts a new executive and returns its ID
func (r *ExecutiveRepository) CreateExecutive(ctx context.Context, executive *models.Executive) (int64, error) {
	sql, args, err := r.sb.Insert("executives").
		Columns("first_name", "last_name", "position", "email", "phone",
			"year_of_study", "image_url", "social_media", "is_active").
		Values(executive.FirstName, executive.LastName, executive.Position, executive.Email, executive.Phone,
			executive.YearOfStudy, executive.ImageURL, executive.SocialMedia, executive.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create executive SQL")
		return 0, fmt.Errorf("failed to build create executive query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create executive query")
		return 0, fmt.Errorf("error creating executive: %w", err)
	}

	return id, nil
}

// GetExecutiveByID retrieves an executive by ID
func (r *ExecutiveRepository) GetExecutiveByID(ctx context.Context, id int64) (*models.Executive, error) {
	sql, args, err := r.sb.Select(executiveColumns...).
		From("executives").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get executive by ID SQL")
		return nil, fmt.Errorf("failed to build get executive query: %w", err)
	}

	executive, err := scanExecutive(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExecutiveNotFound
		}
		logger.Error().Err(err).Int64("executiveID", id).Msg("Error scanning executive row")
		return nil, fmt.Errorf("error getting executive by ID: %w", err)
	}

	return executive, nil
}

// GetExecutives retrieves executives, optionally restricted to active ones
func (r *ExecutiveRepository) GetExecutives(ctx context.Context, activeOnly bool) ([]*models.Executive, error) {
	builder := r.sb.Select(executiveColumns...).
		From("executives").
		OrderBy("id ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get executives SQL")
		return nil, fmt.Errorf("failed to build get executives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get executives query")
		return nil, fmt.Errorf("error querying executives: %w", err)
	}
	defer rows.Close()

	executives := []*models.Executive{}
	for rows.Next() {
		executive, err := scanExecutive(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning executive row")
			return nil, fmt.Errorf("error scanning executive row: %w", err)
		}
		executives = append(executives, executive)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating executive rows")
		return nil, fmt.Errorf("error iterating executive rows: %w", err)
	}

	return executives, nil
}

// UpdateExecutive persists all mutable fields of an executive
func (r *ExecutiveRepository) UpdateExecutive(ctx context.Context, executive *models.Executive) error {
	sql, args, err := r.sb.Update("executives").
		SetMap(map[string]interface{}{
			"first_name":    executive.FirstName,
			"last_name":     executive.LastName,
			"position":      executive.Position,
			"email":         executive.Email,
			"phone":         executive.Phone,
			"year_of_study": executive.YearOfStudy,
			"image_url":     executive.ImageURL,
			"social_media":  executive.SocialMedia,
			"is_active":     executive.IsActive,
		}).
		Where(squirrel.Eq{"id": executive.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update executive SQL")
		return fmt.Errorf("failed to build update executive query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("executiveID", executive.ID).Msg("Error executing update executive query")
		return fmt.Errorf("error updating executive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExecutiveNotFound
	}

	return nil
}

// DeleteExecutive removes an executive by ID
func (r *ExecutiveRepository) DeleteExecutive(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("executives").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete executive SQL")
		return fmt.Errorf("failed to build delete executive query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("executiveID", id).Msg("Error executing delete executive query")
		return fmt.Errorf("error deleting executive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExecutiveNotFound
	}

	return nil
}
