package catalog

import (
	"net/http"

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
	r.GET("/products", h.Products)
	r.GET("/categories", h.Categories)
	r.GET("/hero", h.Hero)
}

// Products returns the storefront product list.
func (h *Handler) Products(c *gin.Context) {
	products, err := h.svc.GetProducts(c.Request.Context())
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// Categories returns categories with per-category product lists and counts.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.svc.GetCategories(c.Request.Context())
	if err != nil {
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// Hero returns the landing page hero entry. Always 200; missing content or
// upstream failure yields a null hero.
func (h *Handler) Hero(c *gin.Context) {
	hero := h.svc.GetHero(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"hero":    hero,
	})
}
