package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type SettingsHandler struct {
	repo *repository.SettingsRepository
}

func NewSettingsHandler(repo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.repo.Get(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Save replaces the whole singleton document via upsert against the fixed id.
func (h *SettingsHandler) Save(c *gin.Context) {
	var settings models.CompanySettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.repo.Save(c.Request.Context(), &settings); err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, settings)
}
