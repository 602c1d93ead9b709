package handlers

import (
	"github.com/go-playground/validator/v10"

	"photoshare/internal/config"
	"photoshare/internal/database"
	"photoshare/internal/repository"
	"photoshare/internal/service"
	"photoshare/internal/storage"
)

type Handlers struct {
	AuthService    service.AuthService
	PhotoService   service.PhotoService
	MessageService service.MessageService
	UserService    service.UserService
	UserRepo       repository.UserRepository
	PhotoRepo      repository.PhotoRepository
	MessageRepo    repository.MessageRepository
	FileStore      storage.FileStore
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, fileStore storage.FileStore, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PhotoService:   service.Photo,
		MessageService: service.Message,
		UserService:    service.User,
		UserRepo:       repo.User,
		PhotoRepo:      repo.Photo,
		MessageRepo:    repo.Message,
		FileStore:      fileStore,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
