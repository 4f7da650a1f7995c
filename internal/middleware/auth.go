package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/auth"
	"teklif-api/internal/repository"
)

// Context keys set by the auth middlewares.
const (
	CtxAdminUsername = "admin_username"
	CtxCustomerID    = "customer_id"
	CtxCustomerEmail = "customer_email"
	CtxIsAdmin       = "is_admin"
)

// RequireAdmin gates a route with HTTP Basic credentials checked against the
// stored admin hash on every call. There is no session.
func RequireAdmin(admins *repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !verifyAdmin(c, admins, username, password) {
			c.Header("WWW-Authenticate", `Basic realm="teklif-admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Hatalı kullanıcı adı veya şifre"})
			return
		}
		c.Set(CtxAdminUsername, username)
		c.Set(CtxIsAdmin, true)
		c.Next()
	}
}

// RequireCustomerOrAdmin accepts either a customer bearer token or admin
// Basic credentials. Handlers decide whether the customer principal may see
// the requested resource.
func RequireCustomerOrAdmin(admins *repository.AdminRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, password, ok := c.Request.BasicAuth(); ok {
			if verifyAdmin(c, admins, username, password) {
				c.Set(CtxAdminUsername, username)
				c.Set(CtxIsAdmin, true)
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Oturum gerekli"})
			return
		}

		claims, err := auth.ParseCustomerToken(jwtSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Geçersiz veya süresi dolmuş oturum"})
			return
		}
		c.Set(CtxCustomerID, claims.CustomerID)
		c.Set(CtxCustomerEmail, claims.Email)
		c.Next()
	}
}

func verifyAdmin(c *gin.Context, admins *repository.AdminRepository, username, password string) bool {
	admin, err := admins.FindByUsername(c.Request.Context(), username)
	if err != nil {
		return false
	}
	return auth.CheckPassword(password, admin.PasswordHash)
}

// IsAdmin reports whether the request passed an admin gate.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(CtxIsAdmin)
}
