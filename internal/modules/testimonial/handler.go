package testimonial

import (
	"errors"
	"net/http"
	"strconv"

	"wooders/internal/domain"
	"wooders/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/testimonials", h.ListApproved)
	r.POST("/testimonials", h.Submit)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/admin/testimonials", h.List)
	protected.PUT("/admin/testimonials/:id", h.Update)
	protected.DELETE("/admin/testimonials/:id", h.Delete)
}

// ListApproved serves the public testimonial wall.
func (h *Handler) ListApproved(c *gin.Context) {
	testimonials, err := h.svc.ListApproved(c.Request.Context())
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch testimonials", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"testimonials": testimonials,
	})
}

// Submit accepts a customer testimonial for moderation.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial payload")
		return
	}

	if req.Name == "" || req.Email == "" || req.Feedback == "" || req.Rating == 0 {
		response.Error(c, http.StatusBadRequest, "Name, email, feedback, and rating are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		response.Error(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	t, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Invalid testimonial payload")
			return
		}
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to submit testimonial", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Testimonial submitted successfully",
		"testimonial": t,
	})
}

// List returns all testimonials for moderation, optionally filtered with
// ?status=. Admin only.
func (h *Handler) List(c *gin.Context) {
	status := domain.TestimonialStatus(c.Query("status"))

	testimonials, err := h.svc.List(c.Request.Context(), status)
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch testimonials", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"testimonials": testimonials,
	})
}

// Update applies a moderation edit. Admin only.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial payload")
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Testimonial not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Status must be one of: pending, approved, rejected")
		default:
			response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to update testimonial", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Testimonial updated successfully",
		"testimonial": t,
	})
}

// Delete removes a testimonial permanently. Admin only.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to delete testimonial", err)
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Testimonial deleted successfully", nil)
}
