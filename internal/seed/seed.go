package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kdanquah/regportal/internal/app/models"
	appRepos "github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	pkgAuth "github.com/kdanquah/regportal/internal/pkg/auth"
)

// defaultAdmins are the bootstrap review accounts. Passwords are hashed at
// seed time and should be rotated after first login.
var defaultAdmins = []struct {
	username string
	password string
	email    string
}{
	{"EdinamSD", "prettyFLACO", "edinam.ayisadu@gmail.com"},
	{"admin2", "admin456", "admin2@school.edu"},
	{"admin", "admin123", "admin@school.edu"},
}

// CreateDefaultData creates the default admin accounts if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin accounts...")
	var finalErr error

	for _, a := range defaultAdmins {
		hash, err := pkgAuth.HashPassword(a.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", a.username).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		admin := &appModels.Admin{
			Username:     a.username,
			PasswordHash: hash,
			Email:        a.email,
		}

		err = adminRepo.Create(ctx, admin)
		switch {
		case err == nil:
			lgr.Info().Str("username", a.username).Msg("Default admin account created")
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			// already seeded on a previous start
		default:
			lgr.Error().Err(err).Str("username", a.username).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
