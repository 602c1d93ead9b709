package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок %s: %w", root, err)
	}

	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	storedName := SanitizeFilename(fileName)

	dst, err := os.Create(filepath.Join(s.root, storedName))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании файла %s: %w", storedName, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("ошибка при записи файла %s: %w", storedName, err)
	}

	return storedName, nil
}

func (s *LocalStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, SanitizeFilename(storedName)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("файл %s не найден", storedName)
		}
		return nil, fmt.Errorf("ошибка при открытии файла %s: %w", storedName, err)
	}

	return f, nil
}

func (s *LocalStore) Remove(ctx context.Context, storedName string) error {
	err := os.Remove(filepath.Join(s.root, SanitizeFilename(storedName)))
	if err != nil {
		return fmt.Errorf("ошибка при удалении файла %s: %w", storedName, err)
	}

	return nil
}
