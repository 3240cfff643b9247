package auth

import (
	"errors"
	"net/http"

	"wooders/internal/middleware"
	"wooders/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for administrator sessions
type Handler struct {
	service      *Service
	cookieMaxAge int
	secureCookie bool
}

// NewHandler creates a new auth handler. cookieMaxAge is the session cookie
// lifetime in seconds; secureCookie should be true in production.
func NewHandler(service *Service, cookieMaxAge int, secureCookie bool) *Handler {
	return &Handler{
		service:      service,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
	}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", h.Login)
		adminGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/admin/me", h.Me)
}

// Login authenticates the administrator and sets the session cookie.
// @Summary		Administrator login
// @Description	Verifies email and password, mints a signed session token and stores it in an HTTP-only cookie. Invalid email and wrong password return the same message.
// @Tags		Admin auth
// @Param		request	body	LoginRequest	true	"Credentials (email, password)"
// @Success		200	{object}		map[string]interface{} "Authenticated, session cookie set"
// @Failure		400	{object}		map[string]interface{} "Missing or malformed credentials"
// @Failure		401	{object}		map[string]interface{} "Invalid credentials"
// @Failure		500	{object}		map[string]interface{} "Server error during authentication"
// @Router		/admin/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.ErrorWithCause(c, http.StatusInternalServerError, "Failed to authenticate", err)
		return
	}

	h.setSessionCookie(c, token, h.cookieMaxAge)

	response.SuccessMessage(c, http.StatusOK, "Authenticated successfully", AdminPublic{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	})
}

// Logout clears the session cookie.
// @Summary		Administrator logout
// @Tags		Admin auth
// @Success		200	{object}		map[string]interface{} "Cookie cleared"
// @Router		/admin/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.SuccessMessage(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated administrator's profile.
// @Summary		Current administrator
// @Tags		Admin auth
// @Success		200	{object}		map[string]interface{} "Administrator profile"
// @Failure		401	{object}		map[string]interface{} "Missing or invalid session"
// @Router		/admin/me [GET]
func (h *Handler) Me(c *gin.Context) {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	response.Success(c, http.StatusOK, AdminPublic{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AdminTokenCookie, token, maxAge, "/", "", h.secureCookie, true)
}
