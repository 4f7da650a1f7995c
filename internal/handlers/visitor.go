package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/repository"
	"teklif-api/internal/visitor"
)

type VisitorHandler struct {
	repo    *repository.VisitorRepository
	tracker *visitor.Tracker
}

func NewVisitorHandler(repo *repository.VisitorRepository, tracker *visitor.Tracker) *VisitorHandler {
	return &VisitorHandler{repo: repo, tracker: tracker}
}

// Track records a page view. Fire-and-forget: the response never waits on
// the geolocation lookup or the database write.
func (h *VisitorHandler) Track(c *gin.Context) {
	var payload struct {
		Page string `json:"page"`
	}
	_ = c.ShouldBindJSON(&payload)
	if payload.Page == "" {
		payload.Page = "/"
	}

	ip := c.ClientIP()
	userAgent := c.Request.UserAgent()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		h.tracker.Track(ctx, ip, userAgent, payload.Page)
	}()

	c.JSON(http.StatusOK, gin.H{"tracked": true})
}

func (h *VisitorHandler) List(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)

	visitors, err := h.repo.FindRecent(c.Request.Context(), limit)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, visitors)
}
