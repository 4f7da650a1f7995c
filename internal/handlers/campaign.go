package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

// CampaignStore is the data access the campaign handlers need.
type CampaignStore interface {
	FindAll(ctx context.Context) ([]models.Campaign, error)
	FindActive(ctx context.Context, now time.Time) (*models.Campaign, error)
	Create(ctx context.Context, create *models.CampaignCreate) (*models.Campaign, error)
	Update(ctx context.Context, id string, update *models.CampaignUpdate) (*models.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type CampaignHandler struct {
	repo CampaignStore
}

func NewCampaignHandler(repo CampaignStore) *CampaignHandler {
	return &CampaignHandler{repo: repo}
}

func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// Active serves the public banner: the newest campaign whose window contains
// now, or a nil campaign when there is none. A database failure is still a
// server error, not an empty banner.
func (h *CampaignHandler) Active(c *gin.Context) {
	campaign, err := h.repo.FindActive(c.Request.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"campaign": nil})
			return
		}
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var create models.CampaignCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	campaign, err := h.repo.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	var update models.CampaignUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	campaign, err := h.repo.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Kampanya bulunamadı")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Kampanya bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Kampanya silindi"})
}
