// Package storage abstracts where uploaded files land. The inline store
// answers with a base64 data URL and persists nothing; the local store writes
// under the upload directory served as static assets.
package storage

import (
	"context"
	"path/filepath"
	"strings"
)

type Storage interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// New picks the persistent store for the configured driver. Unknown drivers
// fall back to local disk.
func New(driver, uploadDir string) Storage {
	switch driver {
	case "inline":
		return &InlineStorage{}
	default:
		return &LocalStorage{Dir: uploadDir, BaseURL: "/uploads"}
	}
}

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ContentTypeFor maps a filename extension to its MIME type, defaulting to
// application/octet-stream.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}
