package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type ContactHandler struct {
	repo *repository.ContactRepository
}

func NewContactHandler(repo *repository.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// Create is the public contact form endpoint.
func (h *ContactHandler) Create(c *gin.Context) {
	var create models.ContactMessageCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	message, err := h.repo.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.repo.FindAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ContactHandler) Get(c *gin.Context) {
	message, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Mesaj bulunamadı")
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var update models.ContactMessageUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	message, err := h.repo.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Mesaj bulunamadı")
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Mesaj bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mesaj silindi"})
}
