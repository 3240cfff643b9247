package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"wooders/internal/domain"
	"wooders/internal/pkg/jwt"
)

type stubAdminReader struct {
	admin *domain.Admin
}

func (s *stubAdminReader) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	if s.admin == nil || s.admin.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.admin, nil
}

func protectedRouter(t *testing.T, jwtService *jwt.Service, admins AdminReader) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(AdminAuth(jwtService, admins))

	router.GET("/protected", func(c *gin.Context) {
		admin, ok := AdminFromContext(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": admin.Email})
	})
	return router
}

func TestAdminAuth_ValidCookie(t *testing.T) {
	jwtService := jwt.New("test-secret-123", 1*time.Hour)
	token, _ := jwtService.GenerateToken(42, "admin@woodersrwanda.rw", "Admin")

	admins := &stubAdminReader{admin: &domain.Admin{ID: 42, Email: "admin@woodersrwanda.rw"}}
	router := protectedRouter(t, jwtService, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@woodersrwanda.rw")
}

func TestAdminAuth_NoCookie(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	router := gin.New()
	router.Use(AdminAuth(jwtService, &stubAdminReader{}))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	router := gin.New()
	router.Use(AdminAuth(jwtService, &stubAdminReader{}))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: "not-a-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAdminAuth_AdminDeletedAfterIssuance(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	token, _ := jwtService.GenerateToken(7, "gone@woodersrwanda.rw", "Gone")

	// the repository no longer knows admin 7
	router := gin.New()
	router.Use(AdminAuth(jwtService, &stubAdminReader{}))

	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("Should not reach here")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}
