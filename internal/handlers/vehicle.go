package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type VehicleHandler struct {
	repo *repository.VehicleRepository
}

func NewVehicleHandler(repo *repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Araç bulunamadı")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var create models.VehicleCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	vehicle, err := h.repo.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var update models.VehicleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	vehicle, err := h.repo.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Araç bulunamadı")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Araç bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Araç silindi"})
}
