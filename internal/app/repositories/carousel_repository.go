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

var carouselColumns = []string{
	"id", "title", "description", "image_url", "image_type", "active",
	"display_order", "uploaded_by", "aspect_ratio", "created_at", "updated_at",
}

// CarouselRepository handles carousel image database operations
type CarouselRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCarouselRepository creates a new CarouselRepository
func NewCarouselRepository(db *pgxpool.Pool) *CarouselRepository {
	return &CarouselRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCarouselImage(row pgx.Row) (*models.CarouselImage, error) {
	img := &models.CarouselImage{}
	err := row.Scan(
		&img.ID, &img.Title, &img.Description, &img.ImageURL, &img.ImageType, &img.Active,
		&img.DisplayOrder, &img.UploadedBy, &img.AspectRatio, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// CreateCarouselImage inserts a new carousel image and returns its ID
func (r *CarouselRepository) CreateCarouselImage(ctx context.Context, img *models.CarouselImage) (int64, error) {
	sql, args, err := r.sb.Insert("carousel_images").
		Columns("title", "description", "image_url", "image_type", "active",
			"display_order", "uploaded_by", "aspect_ratio").
		Values(img.Title, img.Description, img.ImageURL, img.ImageType, img.Active,
			img.DisplayOrder, img.UploadedBy, img.AspectRatio).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create carousel image SQL")
		return 0, fmt.Errorf("failed to build create carousel image query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create carousel image query")
		return 0, fmt.Errorf("error creating carousel image: %w", err)
	}

	return id, nil
}

// GetCarouselImageByID retrieves a carousel image by ID
func (r *CarouselRepository) GetCarouselImageByID(ctx context.Context, id int64) (*models.CarouselImage, error) {
	sql, args, err := r.sb.Select(carouselColumns...).
		From("carousel_images").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get carousel image by ID SQL")
		return nil, fmt.Errorf("failed to build get carousel image query: %w", err)
	}

	img, err := scanCarouselImage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCarouselNotFound
		}
		logger.Error().Err(err).Int64("carouselImageID", id).Msg("Error scanning carousel image row")
		return nil, fmt.Errorf("error getting carousel image by ID: %w", err)
	}

	return img, nil
}

// GetCarouselImages retrieves carousel images in display order, optionally
// restricted to active ones and a single image type
func (r *CarouselRepository) GetCarouselImages(ctx context.Context, activeOnly bool, imageType string) ([]*models.CarouselImage, error) {
	builder := r.sb.Select(carouselColumns...).
		From("carousel_images").
		OrderBy("display_order ASC", "id ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"active": true})
	}
	if imageType != "" {
		builder = builder.Where(squirrel.Eq{"image_type": imageType})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get carousel images SQL")
		return nil, fmt.Errorf("failed to build get carousel images query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get carousel images query")
		return nil, fmt.Errorf("error querying carousel images: %w", err)
	}
	defer rows.Close()

	images := []*models.CarouselImage{}
	for rows.Next() {
		img, err := scanCarouselImage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning carousel image row")
			return nil, fmt.Errorf("error scanning carousel image row: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating carousel image rows")
		return nil, fmt.Errorf("error iterating carousel image rows: %w", err)
	}

	return images, nil
}

// UpdateCarouselImage persists all mutable fields of a carousel image
func (r *CarouselRepository) UpdateCarouselImage(ctx context.Context, img *models.CarouselImage) error {
	sql, args, err := r.sb.Update("carousel_images").
		SetMap(map[string]interface{}{
			"title":         img.Title,
			"description":   img.Description,
			"image_url":     img.ImageURL,
			"image_type":    img.ImageType,
			"active":        img.Active,
			"display_order": img.DisplayOrder,
			"aspect_ratio":  img.AspectRatio,
			"updated_at":    time.Now(),
		}).
		Where(squirrel.Eq{"id": img.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update carousel image SQL")
		return fmt.Errorf("failed to build update carousel image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("carouselImageID", img.ID).Msg("Error executing update carousel image query")
		return fmt.Errorf("error updating carousel image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCarouselNotFound
	}

	return nil
}

// DeleteCarouselImage removes a carousel image by ID
func (r *CarouselRepository) DeleteCarouselImage(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("carousel_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete carousel image SQL")
		return fmt.Errorf("failed to build delete carousel image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("carouselImageID", id).Msg("Error executing delete carousel image query")
		return fmt.Errorf("error deleting carousel image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCarouselNotFound
	}

	return nil
}
