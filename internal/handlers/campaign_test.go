package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type stubCampaignStore struct {
	active    *models.Campaign
	activeErr error
}

func (s *stubCampaignStore) FindAll(context.Context) ([]models.Campaign, error) { return nil, nil }

func (s *stubCampaignStore) FindActive(context.Context, time.Time) (*models.Campaign, error) {
	return s.active, s.activeErr
}

func (s *stubCampaignStore) Create(context.Context, *models.CampaignCreate) (*models.Campaign, error) {
	return nil, nil
}

func (s *stubCampaignStore) Update(context.Context, string, *models.CampaignUpdate) (*models.Campaign, error) {
	return nil, nil
}

func (s *stubCampaignStore) Delete(context.Context, string) error { return nil }

func activeRequest(t *testing.T, store CampaignStore) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/api/campaigns/active", NewCampaignHandler(store).Active)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/campaigns/active", nil))
	return w
}

func TestCampaignActiveFound(t *testing.T) {
	w := activeRequest(t, &stubCampaignStore{active: &models.Campaign{ID: "c1", Title: "Yaz Kampanyası"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Yaz Kampanyası")
}

func TestCampaignActiveNone(t *testing.T) {
	w := activeRequest(t, &stubCampaignStore{activeErr: repository.ErrNotFound})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"campaign":null`)
}

func TestCampaignActiveDatabaseError(t *testing.T) {
	w := activeRequest(t, &stubCampaignStore{activeErr: errors.New("connection reset")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "İşlem gerçekleştirilemedi")
}
