package auth

import (
	"context"

	"wooders/internal/domain"
)

// AdminRepositoryInterface — only the methods the auth service uses
type AdminRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
