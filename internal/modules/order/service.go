package order

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"wooders/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxNumberAttempts bounds the regenerate-and-retry loop when the generated
// order number collides with an existing one. The storage layer's unique
// index is the actual uniqueness guarantee.
const maxNumberAttempts = 3

type Service struct {
	orders OrderRepositoryInterface
	notifs NotificationSender
}

func NewService(orders OrderRepositoryInterface, notifs NotificationSender) *Service {
	return &Service{orders: orders, notifs: notifs}
}

// CreateOrder persists a customer submission in pending status. The total
// amount is taken as submitted; line items are snapshots captured at order
// time. A best-effort admin notification is dispatched after the write.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	o := &domain.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		Status:          domain.OrderPending,
		ShippingAddress: req.ShippingAddress,
	}

	var err error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		o.OrderNumber, err = generateOrderNumber()
		if err != nil {
			return nil, err
		}
		err = s.orders.Create(ctx, o)
		if err == nil {
			break
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		go func(o domain.Order) {
			if err := s.notifs.NotifyOrderCreated(context.Background(), &o); err != nil {
				log.WithError(err).WithField("order_number", o.OrderNumber).
					Warn("Failed to send order confirmation email to admin")
			}
		}(*o)
	}

	return o, nil
}

// TrackByOrderNumber is the public lookup used by customers. No
// authentication by design: customers do not log in.
func (s *Service) TrackByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	if orderNumber == "" {
		return nil, ErrValidation
	}

	o, err := s.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.GetAll(ctx)
}

// UpdateStatus overwrites the current status with any value from the
// enumerated set. Transitions are not restricted to the forward path; that
// matches the shop's observed workflow. A best-effort notification goes to
// the customer after the write.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrValidation
	}

	o, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.notifs != nil {
		go func(o domain.Order) {
			if err := s.notifs.NotifyOrderStatusChanged(context.Background(), &o); err != nil {
				log.WithError(err).WithField("order_number", o.OrderNumber).
					Warn("Failed to send order status update email to customer")
			}
		}(*o)
	}

	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

const orderNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber produces ORD-<unix ms>-<9 uppercase alnum>. Collision
// probability is negligible; the unique index catches the rest.
func generateOrderNumber() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(buf)), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite (local development and tests)
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
