package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/trackademy/backend/internal/app/models"
	"github.com/trackademy/backend/internal/app/repositories"
	"github.com/trackademy/backend/internal/db"
	"github.com/trackademy/backend/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@trackademy.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds a default admin account when the users table is
// empty, so a fresh deployment has a login to bootstrap the rest of the
// data through the API.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to count users during seeding")
		return err
	}

	if count > 0 {
		lgr.Debug().Int64("users", count).Msg("Users already present, skipping admin seed")
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to hash default admin password")
		return err
	}

	admin := &models.User{
		Email:    defaultAdminEmail,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	err = db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		return userRepo.CreateTx(ctx, tx, admin)
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin user")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created, change the password after first login")
	return nil
}
