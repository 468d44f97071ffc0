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

var classLeaderColumns = []string{
	"id", "first_name", "last_name", "position", "year_of_study", "email",
	"phone", "bio", "image_url", "social_accounts", "is_active",
	"created_at", "updated_at",
}

// ClassLeaderRepository handles class leader database operations
type ClassLeaderRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassLeaderRepository creates a new ClassLeaderRepository
func NewClassLeaderRepository(db *pgxpool.Pool) *ClassLeaderRepository {
	return &ClassLeaderRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanClassLeader(row pgx.Row) (*models.ClassLeader, error) {
	l := &models.ClassLeader{}
	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Position, &l.YearOfStudy, &l.Email,
		&l.Phone, &l.Bio, &l.ImageURL, &l.SocialAccounts, &l.IsActive,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// CreateClassLeader inserts a new class leader and returns its ID
func (r *ClassLeaderRepository) CreateClassLeader(ctx context.Context, leader *models.ClassLeader) (int64, error) {
	sql, args, err := r.sb.Insert("class_leaders").
		Columns("first_name", "last_name", "position", "year_of_study", "email",
			"phone", "bio", "image_url", "social_accounts", "is_active").
		Values(leader.FirstName, leader.LastName, leader.Position, leader.YearOfStudy, leader.Email,
			leader.Phone, leader.Bio, leader.ImageURL, leader.SocialAccounts, leader.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create class leader SQL")
		return 0, fmt.Errorf("failed to build create class leader query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create class leader query")
		return 0, fmt.Errorf("error creating class leader: %w", err)
	}

	return id, nil
}

// GetClassLeaderByID retrieves a class leader by ID
func (r *ClassLeaderRepository) GetClassLeaderByID(ctx context.Context, id int64) (*models.ClassLeader, error) {
	sql, args, err := r.sb.Select(classLeaderColumns...).
		From("class_leaders").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get class leader by ID SQL")
		return nil, fmt.Errorf("failed to build get class leader query: %w", err)
	}

	leader, err := scanClassLeader(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassLeaderNotFound
		}
		logger.Error().Err(err).Int64("classLeaderID", id).Msg("Error scanning class leader row")
		return nil, fmt.Errorf("error getting class leader by ID: %w", err)
	}

	return leader, nil
}

// GetClassLeaders retrieves class leaders, optionally filtered by year of study.
// A nil year returns all leaders.
func (r *ClassLeaderRepository) GetClassLeaders(ctx context.Context, year *int, activeOnly bool) ([]*models.ClassLeader, error) {
	builder := r.sb.Select(classLeaderColumns...).
		From("class_leaders").
		OrderBy("year_of_study ASC", "id ASC")
	if year != nil {
		builder = builder.Where(squirrel.Eq{"year_of_study": *year})
	}
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get class leaders SQL")
		return nil, fmt.Errorf("failed to build get class leaders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get class leaders query")
		return nil, fmt.Errorf("error querying class leaders: %w", err)
	}
	defer rows.Close()

	leaders := []*models.ClassLeader{}
	for rows.Next() {
		leader, err := scanClassLeader(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning class leader row")
			return nil, fmt.Errorf("error scanning class leader row: %w", err)
		}
		leaders = append(leaders, leader)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating class leader rows")
		return nil, fmt.Errorf("error iterating class leader rows: %w", err)
	}

	return leaders, nil
}

// UpdateClassLeader persists all mutable fields of a class leader
func (r *ClassLeaderRepository) UpdateClassLeader(ctx context.Context, leader *models.ClassLeader) error {
	sql, args, err := r.sb.Update("class_leaders").
		SetMap(map[string]interface{}{
			"first_name":      leader.FirstName,
			"last_name":       leader.LastName,
			"position":        leader.Position,
			"year_of_study":   leader.YearOfStudy,
			"email":           leader.Email,
			"phone":           leader.Phone,
			"bio":             leader.Bio,
			"image_url":       leader.ImageURL,
			"social_accounts": leader.SocialAccounts,
			"is_active":       leader.IsActive,
			"updated_at":      time.Now(),
		}).
		Where(squirrel.Eq{"id": leader.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update class leader SQL")
		return fmt.Errorf("failed to build update class leader query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classLeaderID", leader.ID).Msg("Error executing update class leader query")
		return fmt.Errorf("error updating class leader: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassLeaderNotFound
	}

	return nil
}

// DeleteClassLeader removes a class leader by ID
func (r *ClassLeaderRepository) DeleteClassLeader(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("class_leaders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete class leader SQL")
		return fmt.Errorf("failed to build delete class leader query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classLeaderID", id).Msg("Error executing delete class leader query")
		return fmt.Errorf("error deleting class leader: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassLeaderNotFound
	}

	return nil
}

// GetYearCounts tallies active class leaders per year of study
func (r *ClassLeaderRepository) GetYearCounts(ctx context.Context) ([]models.ClassLeaderYearCount, int64, error) {
	const sql = `
		SELECT year_of_study, COUNT(*) FROM class_leaders
		WHERE is_active
		GROUP BY year_of_study
		ORDER BY year_of_study`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying class leader year counts")
		return nil, 0, fmt.Errorf("error querying class leader year counts: %w", err)
	}
	defer rows.Close()

	counts := []models.ClassLeaderYearCount{}
	var total int64
	for rows.Next() {
		var c models.ClassLeaderYearCount
		if err := rows.Scan(&c.YearOfStudy, &c.Count); err != nil {
			return nil, 0, fmt.Errorf("error scanning year count row: %w", err)
		}
		counts = append(counts, c)
		total += int64(c.Count)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating year count rows: %w", err)
	}

	return counts, total, nil
}
