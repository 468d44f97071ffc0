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

var memberColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "year_of_study",
	"department", "student_id", "password", "profile_picture", "approved",
	"profile_visible", "newsletter", "interests", "status", "is_active",
	"joined_at", "updated_at",
}

// MemberRepository handles member database operations
type MemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMember(row pgx.Row) (*models.Member, error) {
	m := &models.Member{}
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.YearOfStudy,
		&m.Department, &m.StudentID, &m.Password, &m.ProfilePicture, &m.Approved,
		&m.ProfileVisible, &m.Newsletter, &m.Interests, &m.Status, &m.IsActive,
		&m.JoinedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMember inserts a new member and returns its ID.
// A unique violation on email maps to ErrEmailAlreadyExists.
func (r *MemberRepository) CreateMember(ctx context.Context, member *models.Member) (int64, error) {
	sql, args, err := r.sb.Insert("members").
		Columns("first_name", "last_name", "email", "phone", "year_of_study",
			"department", "student_id", "password", "profile_picture", "approved",
			"profile_visible", "newsletter", "interests", "status", "is_active").
		Values(member.FirstName, member.LastName, member.Email, member.Phone, member.YearOfStudy,
			member.Department, member.StudentID, member.Password, member.ProfilePicture, member.Approved,
			member.ProfileVisible, member.Newsletter, member.Interests, member.Status, member.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create member SQL")
		return 0, fmt.Errorf("failed to build create member query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create member query")
		return 0, fmt.Errorf("error creating member: %w", err)
	}

	return id, nil
}

// GetMemberByID retrieves a member by ID
func (r *MemberRepository) GetMemberByID(ctx context.Context, id int64) (*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).
		From("members").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get member by ID SQL")
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Int64("memberID", id).Msg("Error scanning member row")
		return nil, fmt.Errorf("error getting member by ID: %w", err)
	}

	return member, nil
}

// GetMemberByEmail retrieves a member by email address
func (r *MemberRepository) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).
		From("members").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get member by email SQL")
		return nil, fmt.Errorf("failed to build get member query: %w", err)
	}

	member, err := scanMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning member row")
		return nil, fmt.Errorf("error getting member by email: %w", err)
	}

	return member, nil
}

// GetVisibleMembers retrieves approved members who opted into the public directory
func (r *MemberRepository) GetVisibleMembers(ctx context.Context) ([]*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).
		From("members").
		Where(squirrel.Eq{"approved": true, "profile_visible": true, "is_active": true}).
		OrderBy("first_name ASC", "last_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building visible members SQL")
		return nil, fmt.Errorf("failed to build visible members query: %w", err)
	}

	return r.queryMembers(ctx, sql, args)
}

// GetAllMembers retrieves every member, newest first
func (r *MemberRepository) GetAllMembers(ctx context.Context) ([]*models.Member, error) {
	sql, args, err := r.sb.Select(memberColumns...).
		From("members").
		OrderBy("joined_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all members SQL")
		return nil, fmt.Errorf("failed to build get all members query: %w", err)
	}

	return r.queryMembers(ctx, sql, args)
}

func (r *MemberRepository) queryMembers(ctx context.Context, sql string, args []interface{}) ([]*models.Member, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing members query")
		return nil, fmt.Errorf("error querying members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning member row")
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating member rows")
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// UpdateMember persists all mutable fields of a member
func (r *MemberRepository) UpdateMember(ctx context.Context, member *models.Member) error {
	sql, args, err := r.sb.Update("members").
		SetMap(map[string]interface{}{
			"first_name":      member.FirstName,
			"last_name":       member.LastName,
			"phone":           member.Phone,
			"year_of_study":   member.YearOfStudy,
			"department":      member.Department,
			"student_id":      member.StudentID,
			"profile_picture": member.ProfilePicture,
			"approved":        member.Approved,
			"profile_visible": member.ProfileVisible,
			"newsletter":      member.Newsletter,
			"interests":       member.Interests,
			"status":          member.Status,
			"is_active":       member.IsActive,
			"updated_at":      time.Now(),
		}).
		Where(squirrel.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update member SQL")
		return fmt.Errorf("failed to build update member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", member.ID).Msg("Error executing update member query")
		return fmt.Errorf("error updating member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// UpdateStatus sets a member's presence status
func (r *MemberRepository) UpdateStatus(ctx context.Context, id int64, status models.PresenceStatus) error {
	sql, args, err := r.sb.Update("members").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update member status SQL")
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", id).Msg("Error executing update member status query")
		return fmt.Errorf("error updating member status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// DeleteMember removes a member by ID
func (r *MemberRepository) DeleteMember(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete member SQL")
		return fmt.Errorf("failed to build delete member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("memberID", id).Msg("Error executing delete member query")
		return fmt.Errorf("error deleting member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// GetDirectoryStats aggregates the public directory counters
func (r *MemberRepository) GetDirectoryStats(ctx context.Context) (*dto.DirectoryStats, error) {
	const sql = `
		SELECT
			COUNT(*) FILTER (WHERE approved),
			COUNT(*) FILTER (WHERE approved AND profile_visible AND is_active),
			COUNT(*) FILTER (WHERE approved AND profile_visible AND is_active AND status = 'online')
		FROM members`

	stats := &dto.DirectoryStats{}
	err := r.db.QueryRow(ctx, sql).Scan(&stats.TotalMembers, &stats.VisibleMembers, &stats.ActiveNow)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying directory stats")
		return nil, fmt.Errorf("error querying directory stats: %w", err)
	}

	const yearsSQL = `
		SELECT DISTINCT year_of_study FROM members
		WHERE approved AND profile_visible AND is_active AND year_of_study IS NOT NULL
		ORDER BY year_of_study`

	rows, err := r.db.Query(ctx, yearsSQL)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying member years")
		return nil, fmt.Errorf("error querying member years: %w", err)
	}
	defer rows.Close()

	stats.MemberYears = []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("error scanning member year: %w", err)
		}
		stats.MemberYears = append(stats.MemberYears, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member years: %w", err)
	}

	return stats, nil
}

// GetAdminStats aggregates roster counters for the admin panel
func (r *MemberRepository) GetAdminStats(ctx context.Context) (*dto.AdminMemberStats, error) {
	const sql = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE approved),
			COUNT(*) FILTER (WHERE NOT approved),
			COUNT(*) FILTER (WHERE approved AND is_active)
		FROM members`

	stats := &dto.AdminMemberStats{}
	err := r.db.QueryRow(ctx, sql).Scan(&stats.TotalMembers, &stats.ApprovedMembers, &stats.PendingMembers, &stats.ActiveMembers)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying admin member stats")
		return nil, fmt.Errorf("error querying admin member stats: %w", err)
	}

	return stats, nil
}

// CountActiveMembers counts approved active members
func (r *MemberRepository) CountActiveMembers(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("members").
		Where(squirrel.Eq{"approved": true, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count active members query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting active members")
		return 0, fmt.Errorf("error counting active members: %w", err)
	}

	return count, nil
}
