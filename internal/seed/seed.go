package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/config"
	"github.com/swapnilk/acadesk/internal/db"
	"github.com/swapnilk/acadesk/internal/pkg/auth"
)

const defaultHODEmail = "hod@acadesk.local"

// CreateDefaultData creates the bootstrap HOD account when no user with
// the default email exists yet. Without it a fresh database has nobody
// who can log in to create the real accounts.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(database)

	existing, err := userRepo.GetByEmail(ctx, defaultHODEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	password := config.GetEnv("SEED_HOD_PASSWORD", "ChangeMe@123")
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:     "Head of Department",
		Email:    defaultHODEmail,
		Password: hash,
		Role:     models.RoleHOD,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	lgr.Info().Str("email", defaultHODEmail).Msg("Seeded default HOD account")
	return nil
}
