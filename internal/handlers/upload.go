package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UploadHandler struct {
	inline     storage.Storage
	persistent storage.Storage
}

func NewUploadHandler(persistent storage.Storage) *UploadHandler {
	return &UploadHandler{
		inline:     &storage.InlineStorage{},
		persistent: persistent,
	}
}

// UploadInline answers with a base64 data URL; nothing is persisted.
func (h *UploadHandler) UploadInline(c *gin.Context) {
	h.handle(c, h.inline)
}

// UploadFile persists through the configured store and answers with its URL.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	h.handle(c, h.persistent)
}

func (h *UploadHandler) handle(c *gin.Context, store storage.Storage) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Dosya çok büyük"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		uploadFailed(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		uploadFailed(c, err)
		return
	}

	url, err := store.Save(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		uploadFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "filename": fileHeader.Filename})
}

func uploadFailed(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Dosya yüklenemedi: %s", err)})
}
