package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/auth"
	"teklif-api/internal/middleware"
	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type AdminHandler struct {
	admins *repository.AdminRepository
}

func NewAdminHandler(admins *repository.AdminRepository) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Login verifies credentials against the stored hash. Used by the admin UI
// to validate before it starts sending Basic-authenticated requests.
func (h *AdminHandler) Login(c *gin.Context) {
	var login models.AdminLogin
	if err := c.ShouldBindJSON(&login); err != nil {
		badRequest(c, err)
		return
	}

	admin, err := h.admins.FindByUsername(c.Request.Context(), login.Username)
	if err != nil || !auth.CheckPassword(login.Password, admin.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Hatalı kullanıcı adı veya şifre"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": admin.Username})
}

// Init bootstraps the single admin account on first setup; a no-op once one
// exists.
func (h *AdminHandler) Init(c *gin.Context) {
	exists, err := h.admins.Exists(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{"message": "Admin zaten mevcut"})
		return
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		repoError(c, err, "")
		return
	}
	if _, err := h.admins.Create(c.Request.Context(), defaultAdminUsername, hash); err != nil {
		repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin oluşturuldu",
		"username": defaultAdminUsername,
		"password": defaultAdminPassword,
	})
}

// ChangePassword persists the new hash to the admin document. The database
// record is the only credential store; restarts and replicas all see the
// change.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var change models.AdminPasswordChange
	if err := c.ShouldBindJSON(&change); err != nil {
		badRequest(c, err)
		return
	}

	username := c.GetString(middleware.CtxAdminUsername)
	admin, err := h.admins.FindByUsername(c.Request.Context(), username)
	if err != nil {
		repoError(c, err, "Yönetici bulunamadı")
		return
	}

	if !auth.CheckPassword(change.CurrentPassword, admin.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mevcut şifre hatalı"})
		return
	}

	hash, err := auth.HashPassword(change.NewPassword)
	if err != nil {
		repoError(c, err, "")
		return
	}
	if err := h.admins.UpdatePassword(c.Request.Context(), username, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "Yönetici bulunamadı")
			return
		}
		repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Şifre güncellendi"})
}
