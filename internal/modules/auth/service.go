package auth

import (
	"context"
	"errors"
	"strings"

	"wooders/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(adminID int64, email, name string) (string, error)
}

// Service contains the login logic for the single administrator account.
type Service struct {
	admins AdminRepositoryInterface
	jwt    jwtService
}

func NewService(admins AdminRepositoryInterface, jwt jwtService) *Service {
	return &Service{admins: admins, jwt: jwt}
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password both come back as ErrInvalidCredentials so responses can't
// be used for account enumeration.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Email, admin.Name)
	if err != nil {
		return nil, "", err
	}

	admin.PasswordHash = ""
	return admin, token, nil
}

// GetCurrentAdmin re-reads the admin profile by id.
func (s *Service) GetCurrentAdmin(ctx context.Context, adminID int64) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = ""
	return admin, nil
}
