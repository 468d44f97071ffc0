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
	"github.com/kemumsa/backend/internal/pkg/apperrors"
	"github.com/kemumsa/backend/internal/pkg/logger"
)

var resourceColumns = []string{
	"id", "title", "type", "year", "subject", "description", "file_url",
	"resource_date", "is_active", "created_at", "updated_at",
}

// ResourceFilter narrows a resource listing at the database level
type ResourceFilter struct {
	Type       models.ResourceType
	Year       *int
	Subject    string
	ActiveOnly bool
}

// ResourceRepository handles study resource database operations
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	res := &models.Resource{}
	err := row.Scan(
		&res.ID, &res.Title, &res.Type, &res.Year, &res.Subject, &res.Description,
		&res.FileURL, &res.Date, &res.IsActive, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CreateResource inserts a new resource and returns its ID
func (r *ResourceRepository) CreateResource(ctx context.Context, resource *models.Resource) (int64, error) {
	sql, args, err := r.sb.Insert("resources").
		Columns("title", "type", "year", "subject", "description", "file_url",
			"resource_date", "is_active").
		Values(resource.Title, resource.Type, resource.Year, resource.Subject, resource.Description,
			resource.FileURL, resource.Date, resource.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create resource SQL")
		return 0, fmt.Errorf("failed to build create resource query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create resource query")
		return 0, fmt.Errorf("error creating resource: %w", err)
	}

	return id, nil
}

// GetResourceByID retrieves a resource by ID
func (r *ResourceRepository) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get resource by ID SQL")
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	resource, err := scanResource(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceFileNotFound
		}
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error scanning resource row")
		return nil, fmt.Errorf("error getting resource by ID: %w", err)
	}

	return resource, nil
}

// GetResources retrieves resources matching the filter, newest first
func (r *ResourceRepository) GetResources(ctx context.Context, filter ResourceFilter) ([]*models.Resource, error) {
	builder := r.sb.Select(resourceColumns...).
		From("resources").
		OrderBy("resource_date DESC", "id DESC")
	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Year != nil {
		builder = builder.Where(squirrel.Eq{"year": *filter.Year})
	}
	if filter.Subject != "" {
		builder = builder.Where(squirrel.ILike{"subject": "%" + filter.Subject + "%"})
	}
	if filter.ActiveOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get resources SQL")
		return nil, fmt.Errorf("failed to build get resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get resources query")
		return nil, fmt.Errorf("error querying resources: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning resource row")
			return nil, fmt.Errorf("error scanning resource row: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating resource rows")
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

// UpdateResource persists all mutable fields of a resource
func (r *ResourceRepository) UpdateResource(ctx context.Context, resource *models.Resource) error {
	sql, args, err := r.sb.Update("resources").
		SetMap(map[string]interface{}{
			"title":         resource.Title,
			"type":          resource.Type,
			"year":          resource.Year,
			"subject":       resource.Subject,
			"description":   resource.Description,
			"file_url":      resource.FileURL,
			"resource_date": resource.Date,
			"is_active":     resource.IsActive,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": resource.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update resource SQL")
		return fmt.Errorf("failed to build update resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", resource.ID).Msg("Error executing update resource query")
		return fmt.Errorf("error updating resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceFileNotFound
	}

	return nil
}

// SetActive toggles a resource's visibility
func (r *ResourceRepository) SetActive(ctx context.Context, id int64, active bool) error {
	sql, args, err := r.sb.Update("resources").
		Set("is_active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set resource active SQL")
		return fmt.Errorf("failed to build set resource active query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error executing set resource active query")
		return fmt.Errorf("error toggling resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceFileNotFound
	}

	return nil
}

// DeleteResource removes a resource by ID
func (r *ResourceRepository) DeleteResource(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete resource SQL")
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resourceID", id).Msg("Error executing delete resource query")
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceFileNotFound
	}

	return nil
}
