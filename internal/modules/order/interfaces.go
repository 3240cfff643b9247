package order

import (
	"context"

	"wooders/internal/domain"
)

// OrderRepositoryInterface — storage for orders
type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationSender dispatches transactional email. Implementations must be
// safe to call from background goroutines.
type NotificationSender interface {
	NotifyOrderCreated(ctx context.Context, o *domain.Order) error
	NotifyOrderStatusChanged(ctx context.Context, o *domain.Order) error
}
