package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type CategoryHandler struct {
	repo *repository.CategoryRepository
}

func NewCategoryHandler(repo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var create models.CategoryCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.repo.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var update models.CategoryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.repo.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Kategori bulunamadı")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Kategori bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kategori silindi"})
}
