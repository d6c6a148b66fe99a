package service

import (
	"familycookbook/internal/config"
	"familycookbook/internal/repository"
	"familycookbook/internal/storage"
)

type Service struct {
	Recipe RecipeService
	Story  StoryService
	Auth   AuthService
	Health HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Recipe: NewRecipeService(rep.Recipe, storage, cfg),
		Story:  NewStoryService(rep.Story),
		Auth:   NewAuthService(cfg),
		Health: NewHealthService(rep.Health),
	}
}
