package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"photoshare/internal/models"
	"photoshare/internal/repository"
	"photoshare/internal/storage"
)

type PhotoService interface {
	Upload(ctx context.Context, userID int, fileName string, file io.Reader, size int64, description, keywords string) error
	Edit(ctx context.Context, photoID int, fileName string, file io.Reader, size int64, description, keywords string) error
	Delete(ctx context.Context, photoID int) error
}

type photoService struct {
	photoRepo repository.PhotoRepository
	fileStore storage.FileStore
}

func NewPhotoService(photoRepo repository.PhotoRepository, fileStore storage.FileStore) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		fileStore: fileStore,
	}
}

func (p *photoService) Upload(ctx context.Context, userID int, fileName string, file io.Reader, size int64, description, keywords string) error {
	storedName, err := p.fileStore.Save(ctx, fileName, file, size)
	if err != nil {
		return fmt.Errorf("ошибка сохранения файла: %w", err)
	}

	photo := &models.Photo{
		UserID:      userID,
		Filename:    storedName,
		Description: description,
		Keywords:    keywords,
	}

	err = p.photoRepo.Create(ctx, photo)
	if err != nil {
		// откатываем файл, чтобы не оставлять сироту в хранилище
		if removeErr := p.fileStore.Remove(ctx, storedName); removeErr != nil {
			log.Printf("Предупреждение: не удалось удалить файл %s после ошибки БД: %v", storedName, removeErr)
		}
		return fmt.Errorf("ошибка сохранения фотографии в БД: %w", err)
	}

	return nil
}

// Edit обновляет описание и ключевые слова; при переданном файле (file != nil)
// старый файл заменяется новым, иначе имя файла и содержимое не трогаются
func (p *photoService) Edit(ctx context.Context, photoID int, fileName string, file io.Reader, size int64, description, keywords string) error {
	if file == nil {
		return p.photoRepo.UpdateMeta(ctx, photoID, description, keywords)
	}

	photo, err := p.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := p.fileStore.Remove(ctx, photo.Filename); err != nil {
		// отсутствующий старый файл не мешает замене
		log.Printf("Предупреждение: не удалось удалить старый файл %s: %v", photo.Filename, err)
	}

	storedName, err := p.fileStore.Save(ctx, fileName, file, size)
	if err != nil {
		return fmt.Errorf("ошибка сохранения нового файла: %w", err)
	}

	return p.photoRepo.UpdateWithFilename(ctx, photoID, storedName, description, keywords)
}

// Delete убирает строку БД первой, затем файл best-effort: пропавший файл
// логируется, но не считается ошибкой операции
func (p *photoService) Delete(ctx context.Context, photoID int) error {
	photo, err := p.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := p.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	if err := p.fileStore.Remove(ctx, photo.Filename); err != nil {
		log.Printf("Предупреждение: не удалось удалить файл %s: %v", photo.Filename, err)
	}

	return nil
}
