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

type StoryRepositoryImpl struct {
	db *sqlx.DB
}

func NewStoryRepository(db *sqlx.DB) *StoryRepositoryImpl {
	return &StoryRepositoryImpl{db: db}
}

func (r *StoryRepositoryImpl) Create(ctx context.Context, story *models.FamilyStory) error {
	query := `
        INSERT INTO family_stories
        (story_id, title, description, video_url, status, created_at, updated_at)
        VALUES
        (:story_id, :title, :description, :video_url, :status, :created_at, :updated_at)
    `

	if story.StoryID == "" {
		story.StoryID = uuid.New().String()
	}

	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, story)
	if err != nil {
		return fmt.Errorf("ошибка при создании истории: %w", err)
	}

	return nil
}

func (r *StoryRepositoryImpl) GetByID(ctx context.Context, storyID string) (*models.FamilyStory, error) {
	query := `
        SELECT * FROM family_stories
        WHERE story_id = $1
    `

	var story models.FamilyStory
	err := r.db.GetContext(ctx, &story, query, storyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("история с ID %s: %w", storyID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении истории: %w", err)
	}

	return &story, nil
}

func (r *StoryRepositoryImpl) ListAll(ctx context.Context) ([]models.FamilyStory, error) {
	query := `
        SELECT * FROM family_stories
        ORDER BY created_at DESC
    `

	stories := []models.FamilyStory{}
	err := r.db.SelectContext(ctx, &stories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении историй: %w", err)
	}

	return stories, nil
}

func (r *StoryRepositoryImpl) ListByStatus(ctx context.Context, status string) ([]models.FamilyStory, error) {
	query := `
        SELECT * FROM family_stories
        WHERE status = $1
        ORDER BY created_at DESC
    `

	stories := []models.FamilyStory{}
	err := r.db.SelectContext(ctx, &stories, query, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении историй: %w", err)
	}

	return stories, nil
}

func (r *StoryRepositoryImpl) Update(ctx context.Context, story *models.FamilyStory) error {
	query := `
		UPDATE family_stories SET
			title = :title,
			description = :description,
			video_url = :video_url,
			status = :status,
			updated_at = :updated_at
		WHERE story_id = :story_id
	`

	story.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, story)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении истории: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *StoryRepositoryImpl) UpdateStatus(ctx context.Context, storyID, status string) error {
	query := `
		UPDATE family_stories SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE story_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, storyID)
	if err != nil {
		return fmt.Errorf("ошибка при смене статуса истории: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *StoryRepositoryImpl) Delete(ctx context.Context, storyID string) error {
	query := `DELETE FROM family_stories WHERE story_id = $1`

	result, err := r.db.ExecContext(ctx, query, storyID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении истории: %w", err)
	}

	return requireRowsAffected(result)
}

func (r *StoryRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM family_stories`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте историй: %w", err)
	}

	return count, nil
}
