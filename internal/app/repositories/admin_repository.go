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

var adminColumns = []string{
	"id", "username", "password", "email", "role", "last_login",
	"created_at", "updated_at",
}

// AdminRepository handles admin account database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(
		&a.ID, &a.Username, &a.Password, &a.Email, &a.Role, &a.LastLogin,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAdmin inserts an admin account, ignoring the insert if the username
// already exists. Used by the startup seeder.
func (r *AdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	const sql = `
		INSERT INTO admins (username, password, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING`

	_, err := r.db.Exec(ctx, sql, admin.Username, admin.Password, admin.Email, admin.Role)
	if err != nil {
		logger.Error().Err(err).Str("username", admin.Username).Msg("Error creating admin")
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetAdminByID retrieves an admin by ID
func (r *AdminRepository) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by ID SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by ID: %w", err)
	}

	return admin, nil
}

// GetAdminByUsername retrieves an admin by username
func (r *AdminRepository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin by username SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by username: %w", err)
	}

	return admin, nil
}

// UpdateCredentials changes an admin's username and password hash.
// A unique violation on the new username maps to ErrUsernameTaken.
func (r *AdminRepository) UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error {
	sql, args, err := r.sb.Update("admins").
		SetMap(map[string]interface{}{
			"username":   username,
			"password":   passwordHash,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin credentials SQL")
		return fmt.Errorf("failed to build update credentials query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrUsernameTaken
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing update admin credentials query")
		return fmt.Errorf("error updating admin credentials: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// RecordLogin stamps the admin's last successful login time
func (r *AdminRepository) RecordLogin(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("admins").
		Set("last_login", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build record login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("adminID", id).Msg("Error recording admin login")
		return fmt.Errorf("error recording admin login: %w", err)
	}

	return nil
}
