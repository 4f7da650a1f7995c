package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teklif-api/internal/auth"
)

const testSecret = "test-secret"

func customerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", RequireCustomerOrAdmin(nil, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"customer_id": c.GetString(CtxCustomerID),
			"email":       c.GetString(CtxCustomerEmail),
			"is_admin":    IsAdmin(c),
		})
	})
	return router
}

func TestRequireCustomerNoHeader(t *testing.T) {
	router := customerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Oturum gerekli")
}

func TestRequireCustomerInvalidToken(t *testing.T) {
	router := customerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bozuk-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Geçersiz")
}

func TestRequireCustomerValidToken(t *testing.T) {
	router := customerRouter(t)

	token, err := auth.IssueCustomerToken(testSecret, "cust-42", "musteri@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cust-42")
	assert.Contains(t, w.Body.String(), "musteri@example.com")
	assert.Contains(t, w.Body.String(), `"is_admin":false`)
}

func TestRequireCustomerWrongScheme(t *testing.T) {
	router := customerRouter(t)

	token, err := auth.IssueCustomerToken(testSecret, "cust-42", "musteri@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiterNilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", RateLimiter(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
