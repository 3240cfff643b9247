package testimonial

import (
	"context"
	"errors"

	"wooders/internal/domain"
	"wooders/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	testimonials TestimonialRepositoryInterface
}

func NewService(testimonials TestimonialRepositoryInterface) *Service {
	return &Service{testimonials: testimonials}
}

// Submit stores a new testimonial in pending status. Submissions never go
// live without moderation.
func (s *Service) Submit(ctx context.Context, req SubmitTestimonialRequest) (*domain.Testimonial, error) {
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		return nil, ErrValidation
	}

	t := &domain.Testimonial{
		Name:     req.Name,
		Email:    req.Email,
		Feedback: req.Feedback,
		Rating:   req.Rating,
		Photo:    req.Photo,
		Status:   domain.TestimonialPending,
	}
	if err := s.testimonials.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListApproved returns only testimonials cleared for public display.
func (s *Service) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, domain.TestimonialApproved)
}

// List returns testimonials for the admin view. An unknown status filter is
// passed through and simply matches nothing.
func (s *Service) List(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, status)
}

// Update applies a partial moderation edit. A request with no fields set is
// a no-op returning the current row.
func (s *Service) Update(ctx context.Context, id int64, req UpdateTestimonialRequest) (*domain.Testimonial, error) {
	changes := map[string]any{}
	if req.Status != nil {
		status := domain.TestimonialStatus(*req.Status)
		if !domain.ValidTestimonialStatus(status) {
			return nil, ErrValidation
		}
		changes["status"] = string(status)
	}
	if req.Name != nil && *req.Name != "" {
		changes["name"] = *req.Name
	}
	if req.Feedback != nil && *req.Feedback != "" {
		changes["feedback"] = *req.Feedback
	}

	var (
		t   *domain.Testimonial
		err error
	)
	if len(changes) == 0 {
		t, err = s.testimonials.GetByID(ctx, id)
	} else {
		t, err = s.testimonials.Update(ctx, id, changes)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.testimonials.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
