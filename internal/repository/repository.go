package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"familycookbook/internal/models"
)

// ErrNotFound marks lookups for ids that do not exist. Callers that hide
// records by visibility return it as well, so the caller cannot tell a
// hidden record from a missing one.
var ErrNotFound = errors.New("запись не найдена")

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, recipeID string) (*models.Recipe, error)
	ListAll(ctx context.Context) ([]models.Recipe, error)
	ListByStatus(ctx context.Context, status string) ([]models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	UpdateStatus(ctx context.Context, recipeID, status string) error
	UpdateImageURL(ctx context.Context, recipeID, imageURL string) error
	Delete(ctx context.Context, recipeID string) error
	Count(ctx context.Context) (int, error)
}

type StoryRepository interface {
	Create(ctx context.Context, story *models.FamilyStory) error
	GetByID(ctx context.Context, storyID string) (*models.FamilyStory, error)
	ListAll(ctx context.Context) ([]models.FamilyStory, error)
	ListByStatus(ctx context.Context, status string) ([]models.FamilyStory, error)
	Update(ctx context.Context, story *models.FamilyStory) error
	UpdateStatus(ctx context.Context, storyID, status string) error
	Delete(ctx context.Context, storyID string) error
	Count(ctx context.Context) (int, error)
}

type HealthRepository interface {
	SchemaVersion(ctx context.Context) (int, error)
}

type Repository struct {
	Recipe RecipeRepository
	Story  StoryRepository
	Health HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Recipe: NewRecipeRepository(db),
		Story:  NewStoryRepository(db),
		Health: NewHealthRepository(db),
	}
}
