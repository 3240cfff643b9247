package domain

import "time"

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

func ValidTestimonialStatus(s TestimonialStatus) bool {
	switch s {
	case TestimonialPending, TestimonialApproved, TestimonialRejected:
		return true
	}
	return false
}

type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
	// Photo is an optional data URL uploaded by the customer.
	Photo     string            `json:"photo,omitempty"`
	Status    TestimonialStatus `json:"status" gorm:"index"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
