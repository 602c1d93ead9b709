package repository

import (
	"context"
	"fmt"
	"photoshare/internal/models"

	"github.com/jmoiron/sqlx"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create вставляет сообщение; timestamp назначает сервер (DEFAULT CURRENT_TIMESTAMP)
func (r *messageRepository) Create(ctx context.Context, senderID, receiverID int, content string) error {
	query := r.db.Rebind(`INSERT INTO messages (sender_id, receiver_id, content) VALUES (?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, senderID, receiverID, content)
	if err != nil {
		return fmt.Errorf("ошибка при создании сообщения: %w", err)
	}

	return nil
}

// GetChatUsers - список собеседников: все пользователи, участвовавшие
// в переписке, кроме самого userID
func (r *messageRepository) GetChatUsers(ctx context.Context, userID int) ([]models.ChatUser, error) {
	var chatUsers []models.ChatUser

	query := r.db.Rebind(`
		SELECT DISTINCT u.id, u.username
		FROM users u
		JOIN messages m ON u.id = m.sender_id OR u.id = m.receiver_id
		WHERE u.id != ?
	`)

	err := r.db.SelectContext(ctx, &chatUsers, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка собеседников: %w", err)
	}

	return chatUsers, nil
}

// GetThread - двусторонний тред между userID и chatUserID по возрастанию времени
func (r *messageRepository) GetThread(ctx context.Context, userID, chatUserID int) ([]models.MessageWithSender, error) {
	var messages []models.MessageWithSender

	query := r.db.Rebind(`
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.timestamp, u.username AS sender_username
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE (m.receiver_id = ? AND m.sender_id = ?) OR (m.receiver_id = ? AND m.sender_id = ?)
		ORDER BY m.timestamp ASC
	`)

	err := r.db.SelectContext(ctx, &messages, query, userID, chatUserID, chatUserID, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении переписки: %w", err)
	}

	return messages, nil
}

// Delete удаляет сообщение по id; проверки принадлежности нет,
// поведение исходной системы сохранено
func (r *messageRepository) Delete(ctx context.Context, messageID int) error {
	query := r.db.Rebind(`DELETE FROM messages WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, messageID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении сообщения: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("сообщение с ID %d не найдено", messageID)
	}

	return nil
}
