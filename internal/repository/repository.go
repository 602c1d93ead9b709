package repository

import (
	"context"
	"photoshare/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	Create(ctx context.Context, username, password string) error
	GetByID(ctx context.Context, userID int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int, instructions, interests string) error
	List(ctx context.Context) ([]models.UserListEntry, error)
	Search(ctx context.Context, keyword string) ([]models.UserListEntry, error)
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, photoID int) (*models.Photo, error)
	GetAllWithOwner(ctx context.Context) ([]models.PhotoWithOwner, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Photo, error)
	UpdateMeta(ctx context.Context, photoID int, description, keywords string) error
	UpdateWithFilename(ctx context.Context, photoID int, filename, description, keywords string) error
	Delete(ctx context.Context, photoID int) error
	SearchByKeyword(ctx context.Context, keyword string) ([]models.Photo, error)
}

type MessageRepository interface {
	Create(ctx context.Context, senderID, receiverID int, content string) error
	GetChatUsers(ctx context.Context, userID int) ([]models.ChatUser, error)
	GetThread(ctx context.Context, userID, chatUserID int) ([]models.MessageWithSender, error)
	Delete(ctx context.Context, messageID int) error
}

type Repository struct {
	User    UserRepository
	Photo   PhotoRepository
	Message MessageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Photo:   NewPhotoRepository(db),
		Message: NewMessageRepository(db),
	}
}
