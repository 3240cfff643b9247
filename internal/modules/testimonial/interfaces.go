package testimonial

import (
	"context"

	"wooders/internal/domain"
)

// TestimonialRepositoryInterface — storage for testimonials
type TestimonialRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	List(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*domain.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}
