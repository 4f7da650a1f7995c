package storage

import (
	"context"
	"encoding/base64"
	"fmt"
)

// InlineStorage encodes the upload as a data URL; nothing touches disk.
type InlineStorage struct{}

func (s *InlineStorage) Save(_ context.Context, filename string, data []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", ContentTypeFor(filename), encoded), nil
}
