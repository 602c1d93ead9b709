package service

import (
	"photoshare/internal/config"
	"photoshare/internal/repository"
	"photoshare/internal/storage"
)

type Service struct {
	Auth    AuthService
	Photo   PhotoService
	Message MessageService
	User    UserService
}

func NewService(rep *repository.Repository, cfg *config.Config, fileStore storage.FileStore) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Photo:   NewPhotoService(rep.Photo, fileStore),
		Message: NewMessageService(rep.Message, rep.Photo),
		User:    NewUserService(rep.User, cfg),
	}
}
