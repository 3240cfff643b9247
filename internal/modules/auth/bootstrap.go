package auth

import (
	"context"

	"wooders/internal/domain"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const bootstrapBcryptCost = 12

// EnsureAdmin creates the administrator record from operator-supplied
// credentials if it doesn't exist yet. Called once at startup; idempotent.
func EnsureAdmin(ctx context.Context, admins AdminRepositoryInterface, email, password, name string) error {
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set; skipping admin initialization")
		return nil
	}
	if name == "" {
		name = "Administrator"
	}

	exists, err := admins.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bootstrapBcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := admins.Create(ctx, admin); err != nil {
		return err
	}

	log.WithField("email", admin.Email).Info("Admin user created")
	return nil
}
