package testimonial

type SubmitTestimonialRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Feedback string `json:"feedback" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Photo    string `json:"photo"`
}

// UpdateTestimonialRequest carries a partial update. Nil fields are left
// untouched; moderation typically changes status alone.
type UpdateTestimonialRequest struct {
	Status   *string `json:"status"`
	Name     *string `json:"name"`
	Feedback *string `json:"feedback"`
}
