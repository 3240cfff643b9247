package testimonial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wooders/internal/domain"
)

type mockTestimonialRepo struct {
	mock.Mock
}

func (m *mockTestimonialRepo) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTestimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepo) List(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepo) Update(ctx context.Context, id int64, changes map[string]any) (*domain.Testimonial, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *mockTestimonialRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validSubmitRequest() SubmitTestimonialRequest {
	return SubmitTestimonialRequest{
		Name:     "Aline Uwase",
		Email:    "aline@example.rw",
		Feedback: "Beautiful chairs, fast delivery.",
		Rating:   5,
	}
}

func TestService_Submit_StartsPending(t *testing.T) {
	repo := new(mockTestimonialRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(tm *domain.Testimonial) bool {
		return tm.Status == domain.TestimonialPending
	})).Return(nil)

	service := NewService(repo)

	tm, err := service.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.TestimonialPending, tm.Status)
	repo.AssertExpectations(t)
}

func TestService_Submit_RatingBounds(t *testing.T) {
	service := NewService(new(mockTestimonialRepo))

	for _, rating := range []int{-1, 0, 6, 100} {
		req := validSubmitRequest()
		req.Rating = rating

		_, err := service.Submit(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, "rating %d should be rejected", rating)
	}
}

func TestService_Submit_BoundaryRatingsAccepted(t *testing.T) {
	repo := new(mockTestimonialRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	for _, rating := range []int{1, 5} {
		req := validSubmitRequest()
		req.Rating = rating

		_, err := service.Submit(context.Background(), req)
		assert.NoError(t, err, "rating %d should be accepted", rating)
	}
}

func TestService_Submit_MissingFields(t *testing.T) {
	service := NewService(new(mockTestimonialRepo))

	req := validSubmitRequest()
	req.Email = "not-an-email"

	_, err := service.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListApproved(t *testing.T) {
	repo := new(mockTestimonialRepo)
	approved := []domain.Testimonial{{ID: 1, Status: domain.TestimonialApproved}}

	repo.On("List", mock.Anything, domain.TestimonialApproved).Return(approved, nil)

	service := NewService(repo)

	out, err := service.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertExpectations(t)
}

func TestService_Update_StatusOnly(t *testing.T) {
	repo := new(mockTestimonialRepo)
	updated := &domain.Testimonial{ID: 2, Status: domain.TestimonialApproved}

	repo.On("Update", mock.Anything, int64(2), map[string]any{"status": "approved"}).Return(updated, nil)

	service := NewService(repo)

	status := "approved"
	tm, err := service.Update(context.Background(), 2, UpdateTestimonialRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TestimonialApproved, tm.Status)
	repo.AssertExpectations(t)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	service := NewService(new(mockTestimonialRepo))

	status := "published"
	_, err := service.Update(context.Background(), 2, UpdateTestimonialRequest{Status: &status})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_NoFieldsIsNoOp(t *testing.T) {
	repo := new(mockTestimonialRepo)
	current := &domain.Testimonial{ID: 3, Status: domain.TestimonialPending}

	repo.On("GetByID", mock.Anything, int64(3)).Return(current, nil)

	service := NewService(repo)

	tm, err := service.Update(context.Background(), 3, UpdateTestimonialRequest{})
	require.NoError(t, err)
	assert.Equal(t, current, tm)
	repo.AssertNotCalled(t, "Update")
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockTestimonialRepo)

	status := "approved"
	repo.On("Update", mock.Anything, int64(99), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.Update(context.Background(), 99, UpdateTestimonialRequest{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(mockTestimonialRepo)
	repo.On("Delete", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	service := NewService(repo)

	err := service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
