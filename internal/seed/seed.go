package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kemumsa/backend/internal/app/models"
	"github.com/kemumsa/backend/internal/app/repositories"
	"github.com/kemumsa/backend/internal/config"
	"github.com/kemumsa/backend/internal/pkg/auth"
)

// CreateDefaultData seeds the admin account configured in cfg.Admin.
// The repository insert is a no-op when the username already exists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	lgr.Info().Str("username", cfg.Admin.Username).Msg("Checking/Creating default admin account...")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.Admin{
		Username: cfg.Admin.Username,
		Password: hashedPassword,
		Email:    cfg.Admin.Email,
		Role:     models.RoleAdmin,
	}

	if err := adminRepo.CreateAdmin(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Msg("Default admin account check/creation finished.")
	return nil
}
