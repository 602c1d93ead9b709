package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photoshare/internal/config"
)

// MinIOClient - альтернативный бэкенд файлового хранилища (STORAGE_BACKEND=minio).
// Контракт тот же, что у LocalStore: имя объекта = очищенное имя файла.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания bucket: %w", err)
		}
	}

	return &MinIOClient{client: client, bucket: cfg.MinIO.BucketName}, nil
}

func (m *MinIOClient) Save(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	storedName := SanitizeFilename(fileName)

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(storedName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, storedName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return storedName, nil
}

func (m *MinIOClient) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, SanitizeFilename(storedName), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения из MinIO: %w", err)
	}

	// GetObject ленивый: ошибку отсутствия объекта вернет первое чтение
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("файл %s не найден", storedName)
	}

	return obj, nil
}

func (m *MinIOClient) Remove(ctx context.Context, storedName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, SanitizeFilename(storedName),
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}

	return nil
}
