package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"photoshare/internal/config"
)

// FileStore хранит загруженные файлы фотографий под очищенным именем.
// Повторная загрузка с тем же именем молча перезаписывает файл.
type FileStore interface {
	Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)
	Remove(ctx context.Context, storedName string) error
}

func NewFileStore(cfg *config.Config) (FileStore, error) {
	switch cfg.StorageBackend {
	case "", "local":
		return NewLocalStore(cfg.UploadDir)
	case "minio":
		return NewMinIOClient(cfg)
	default:
		return nil, fmt.Errorf("неизвестный storage backend: %s", cfg.StorageBackend)
	}
}

// SanitizeFilename убирает разделители путей и небезопасные символы,
// оставляя [A-Za-z0-9._-]; пробелы заменяются подчеркиванием
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		cleaned = "file"
	}

	return cleaned
}
