package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type ProductHandler struct {
	repo *repository.ProductRepository
}

func NewProductHandler(repo *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List serves the public catalog listing with category, substring search,
// sorting and low-stock filtering.
func (h *ProductHandler) List(c *gin.Context) {
	opts := repository.ProductListOptions{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		LowStock:  c.Query("low_stock") == "true",
	}

	products, err := h.repo.FindAll(c.Request.Context(), opts)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Ürün bulunamadı")
		return
	}
	c.JSON(http.StatusOK, product)
}

// LowStockList returns products at or below their configured minimum,
// annotated with the derived "critical"/"low" status.
func (h *ProductHandler) LowStockList(c *gin.Context) {
	products, err := h.repo.FindLowStock(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var create models.ProductCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.repo.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update merges only the supplied fields; everything else keeps its stored
// value.
func (h *ProductHandler) Update(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.repo.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Ürün bulunamadı")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Ürün bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ürün silindi"})
}
