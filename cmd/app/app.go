package app

import (
	"context"
	"log"

	"familycookbook/internal/config"
	"familycookbook/internal/database"
	"familycookbook/internal/repository"
	"familycookbook/internal/service"
	"familycookbook/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB (migrations run inside, before anything else)
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	// starter rows go in before the listener starts
	if cfg.SeedOnStart {
		if err := database.Seed(context.Background(), repo); err != nil {
			log.Fatalf("Не удалось заполнить стартовые данные: %v", err)
		}
	}

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
