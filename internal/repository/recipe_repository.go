package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"familycookbook/internal/models"
)

type RecipeRepositoryImpl struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) *RecipeRepositoryImpl {
	return &RecipeRepositoryImpl{db: db}
}

func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *models.Recipe) error {
	query := `
        INSERT INTO recipes
        (recipe_id, title, description, cook_time, servings, ingredients, instructions,
         image_url, status, submitter_name, submitter_email, submitter_notes, created_at, updated_at)
        VALUES
        (:recipe_id, :title, :description, :cook_time, :servings, :ingredients, :instructions,
         :image_url, :status, :submitter_name, :submitter_email, :submitter_notes, :created_at, :updated_at)
    `

	if recipe.RecipeID == "" {
		recipe.RecipeID = uuid.New().String()
	}

	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, recipe)
	if err != nil {
		return fmt.Errorf("ошибка при создании рецепта: %w", err)
	}

	return nil
}

func (r *RecipeRepositoryImpl) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	query := `
        SELECT * FROM recipes
        WHERE recipe_id = $1
    `

	var recipe models.Recipe
	err := r.db.GetContext(ctx, &recipe, query, recipeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("рецепт с ID %s: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении рецепта: %w", err)
	}

	return &recipe, nil
}

func (r *RecipeRepositoryImpl) ListAll(ctx context.Context) ([]models.Recipe, error) {
	query := `
        SELECT * FROM recipes
        ORDER BY created_at DESC
    `

	recipes := []models.Recipe{}
	err := r.db.SelectContext(ctx, &recipes, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении рецептов: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepositoryImpl) ListByStatus(ctx context.Context, status string) ([]models.Recipe, error) {
	query := `
        SELECT * FROM recipes
        WHERE status = $1
        ORDER BY created_at DESC
    `

	recipes := []models.Recipe{}
	err := r.db.SelectContext(ctx, &recipes, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении рецептов: %w", err)
	}

	return recipes, nil
}

// Update replaces every editable field of the record.
func (r *RecipeRepositoryImpl) Update(ctx context.Context, recipe *models.Recipe) error {
	query := `
		UPDATE recipes SET
			title = :title,
			description = :description,
			cook_time = :cook_time,
			servings = :servings,
			ingredients = :ingredients,
			instructions = :instructions,
			image_url = :image_url,
			status = :status,
			submitter_name = :submitter_name,
			submitter_email = :submitter_email,
			submitter_notes = :submitter_notes,
			updated_at = :updated_at
		WHERE recipe_id = :recipe_id
	`

	recipe.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, recipe)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении рецепта: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *RecipeRepositoryImpl) UpdateStatus(ctx context.Context, recipeID, status string) error {
	query := `
		UPDATE recipes SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE recipe_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при смене статуса рецепта: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *RecipeRepositoryImpl) UpdateImageURL(ctx context.Context, recipeID, imageURL string) error {
	query := `
		UPDATE recipes SET
			image_url = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE recipe_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, imageURL, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении изображения рецепта: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *RecipeRepositoryImpl) Delete(ctx context.Context, recipeID string) error {
	query := `DELETE FROM recipes WHERE recipe_id = $1`

	result, err := r.db.ExecContext(ctx, query, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении рецепта: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *RecipeRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM recipes`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте рецептов: %w", err)
	}

	return count, nil
}

func requireRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке изменённых строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
