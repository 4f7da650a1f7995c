// Package handlers contains the HTTP layer: thin gin handlers that bind the
// request, call a repository or service, and serialize the result. Turkish
// is the display language of all user-facing messages; machine-readable
// status lives in the HTTP status code alone.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/repository"
)

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// repoError maps a repository failure onto the right status: not-found is a
// client problem, everything else a logged server error.
func repoError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, notFoundMsg)
		return
	}
	slog.Error("database operation failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "İşlem gerçekleştirilemedi"})
}
