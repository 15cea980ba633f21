package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/config"
	"shoe-store/utils"
)

func setupGuardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	config.AppConfig = &config.Config{
		SessionSecret: "test-secret",
		SessionExpiry: time.Hour,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	admin := router.Group("/admin")
	admin.Use(RequireRole("Administrador"))
	admin.GET("/orders", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func requestWithRole(t *testing.T, router *gin.Engine, role string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := utils.GenerateToken(1, "user@example.com", role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsAnonymousToRoot(t *testing.T) {
	router := setupGuardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardRedirectsWrongRole(t *testing.T) {
	router := setupGuardRouter(t)

	w := requestWithRole(t, router, "Customer")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGuardRendersProtectedSubtreeForExactRole(t *testing.T) {
	router := setupGuardRouter(t)

	w := requestWithRole(t, router, "Administrador")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardRejectsTamperedToken(t *testing.T) {
	router := setupGuardRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestIdentityFromExposesClaims(t *testing.T) {
	config.AppConfig = &config.Config{
		SessionSecret: "test-secret",
		SessionExpiry: time.Hour,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	router.GET("/whoami", func(c *gin.Context) {
		identity := IdentityFrom(c)
		require.NotNil(t, identity)
		c.JSON(http.StatusOK, identity)
	})

	token, err := utils.GenerateToken(42, "admin@example.com", "Administrador")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"rol":"Administrador"}`, w.Body.String())
}
