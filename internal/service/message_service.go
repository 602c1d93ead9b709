package service

import (
	"context"
	"fmt"
	"strings"

	"photoshare/internal/repository"
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID int, content string) error
	SendPostMessage(ctx context.Context, senderID, photoID int, content string) (bool, error)
	Delete(ctx context.Context, messageID int) error
}

type messageService struct {
	messageRepo repository.MessageRepository
	photoRepo   repository.PhotoRepository
}

func NewMessageService(messageRepo repository.MessageRepository, photoRepo repository.PhotoRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		photoRepo:   photoRepo,
	}
}

func (m *messageService) Send(ctx context.Context, senderID, receiverID int, content string) error {
	err := m.messageRepo.Create(ctx, senderID, receiverID, content)
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

// SendPostMessage пишет владельцу фотографии. Возвращает false без ошибки,
// когда вставка молча пропускается: фотография не найдена либо отправитель
// сам владелец (поведение исходной системы)
func (m *messageService) SendPostMessage(ctx context.Context, senderID, photoID int, content string) (bool, error) {
	photo, err := m.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			return false, nil
		}
		return false, err
	}

	if senderID == photo.UserID {
		return false, nil
	}

	err = m.messageRepo.Create(ctx, senderID, photo.UserID, content)
	if err != nil {
		return false, fmt.Errorf("ошибка при отправке сообщения владельцу: %w", err)
	}

	return true, nil
}

func (m *messageService) Delete(ctx context.Context, messageID int) error {
	err := m.messageRepo.Delete(ctx, messageID)
	if err != nil {
		return err
	}

	return nil
}
