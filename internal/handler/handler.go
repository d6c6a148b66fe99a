package handlers

import (
	"github.com/go-playground/validator/v10"

	"familycookbook/internal/config"
	"familycookbook/internal/service"
)

type Handlers struct {
	RecipeService service.RecipeService
	StoryService  service.StoryService
	AuthService   service.AuthService
	HealthService service.HealthService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		RecipeService: services.Recipe,
		StoryService:  services.Story,
		AuthService:   services.Auth,
		HealthService: services.Health,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

func isAdmin(role string) bool {
	return role == service.RoleAdmin
}
