package app

import (
	"log"

	"photoshare/internal/config"
	"photoshare/internal/database"
	"photoshare/internal/repository"
	"photoshare/internal/service"
	"photoshare/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.FileStore) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// file store (local по умолчанию, minio по конфигу)
	fileStore, err := storage.NewFileStore(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать файловое хранилище: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, fileStore)

	return db, repo, services, fileStore
}
