package middleware

import (
	"context"
	"net/http"

	"wooders/internal/domain"
	jwtsvc "wooders/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminTokenCookie is the well-known name of the session cookie.
const AdminTokenCookie = "admin_token"

// AdminReader is the single lookup the authorizer needs.
type AdminReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
}

// AdminAuth guards privileged routes. It extracts the session cookie,
// verifies the token, and re-fetches the admin record by the claimed id —
// the re-fetch is the only defense against stale credentials, since tokens
// carry no revocation mechanism. Every failure answers 401 with the same
// message so callers can't tell which check rejected them.
func AdminAuth(jwt *jwtsvc.Service, admins AdminReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AdminTokenCookie)
		if err != nil || tokenStr == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), claims.AdminID)
		if err != nil {
			// deleted after token issuance
			abortUnauthenticated(c)
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin", admin)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Authentication required",
	})
}

// AdminFromContext returns the record stored by AdminAuth.
func AdminFromContext(c *gin.Context) (*domain.Admin, bool) {
	v, exists := c.Get("admin")
	if !exists {
		return nil, false
	}
	admin, ok := v.(*domain.Admin)
	return admin, ok
}
