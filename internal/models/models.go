package models

import (
	"time"
)

type User struct {
	ID           int     `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	Password     string  `json:"-" db:"password"`
	Instructions *string `json:"instructions" db:"instructions"`
	Interests    *string `json:"interests" db:"interests"`
}

type Photo struct {
	ID          int    `json:"id" db:"id"`
	UserID      int    `json:"userId" db:"user_id"`
	Filename    string `json:"filename" db:"filename"`
	Description string `json:"description" db:"description"`
	Keywords    string `json:"keywords" db:"keywords"`
}

// PhotoWithOwner - строка дашборда: фотография вместе с именем владельца
type PhotoWithOwner struct {
	Photo
	OwnerUsername string `json:"ownerUsername" db:"owner_username"`
}

type Message struct {
	ID         int       `json:"id" db:"id"`
	SenderID   int       `json:"senderId" db:"sender_id"`
	ReceiverID int       `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}

// MessageWithSender - сообщение треда вместе с именем отправителя
type MessageWithSender struct {
	Message
	SenderUsername string `json:"senderUsername" db:"sender_username"`
}

// ChatUser - собеседник в списке переписок
type ChatUser struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
}

// UserListEntry - публичная строка списка пользователей (без пароля)
type UserListEntry struct {
	Username     string  `json:"username" db:"username"`
	Instructions *string `json:"instructions" db:"instructions"`
	Interests    *string `json:"interests" db:"interests"`
}

// Identity - аутентифицированная личность текущего запроса
type Identity struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}
