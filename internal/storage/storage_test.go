package storage

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriverSelection(t *testing.T) {
	assert.IsType(t, &InlineStorage{}, New("inline", ""))
	assert.IsType(t, &LocalStorage{}, New("local", "/tmp/uploads"))
	assert.IsType(t, &LocalStorage{}, New("", "/tmp/uploads"))
}

func TestInlineSave(t *testing.T) {
	s := &InlineStorage{}
	data := []byte("hello world")

	url, err := s.Save(context.Background(), "resim.png", data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestLocalSave(t *testing.T) {
	dir := t.TempDir()
	s := &LocalStorage{Dir: dir, BaseURL: "/uploads"}

	url, err := s.Save(context.Background(), "teklif dosyası.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))

	name := strings.TrimPrefix(url, "/uploads/")
	assert.NotContains(t, name, " ")

	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), written)
}

func TestLocalSaveUniqueNames(t *testing.T) {
	dir := t.TempDir()
	s := &LocalStorage{Dir: dir, BaseURL: "/uploads"}

	first, err := s.Save(context.Background(), "a.txt", []byte("1"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), "a.txt", []byte("2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"belge.pdf", "belge.pdf"},
		{"../../etc/passwd", "passwd"},
		{"teklif dosyası.pdf", "teklif_dosyas_.pdf"},
		{"rapor (son).docx", "rapor__son_.docx"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in))
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("foto.JPG"))
	assert.Equal(t, "application/pdf", ContentTypeFor("belge.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("arsiv.zip"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("noext"))
}
