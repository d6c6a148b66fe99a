package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familycookbook/internal/models"
)

func newMockStoryRepo(t *testing.T) (*StoryRepositoryImpl, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewStoryRepository(sqlxDB), mock, func() { db.Close() }
}

func storyColumns() []string {
	return []string{"story_id", "title", "description", "video_url", "status", "created_at", "updated_at"}
}

func storyRow(id, title, status string, createdAt time.Time) []driver.Value {
	return []driver.Value{id, title, "", "https://example.com/v", status, createdAt, createdAt}
}

func TestStoryRepository_Create(t *testing.T) {
	repo, mock, closeFn := newMockStoryRepo(t)
	defer closeFn()

	mock.ExpectExec("INSERT INTO family_stories").
		WillReturnResult(sqlmock.NewResult(0, 1))

	story := &models.FamilyStory{
		Title:    "Grandma's Kitchen",
		VideoURL: "https://example.com/v",
		Status:   models.StoryStatusDraft,
	}

	err := repo.Create(context.Background(), story)

	assert.NoError(t, err)
	assert.NotEmpty(t, story.StoryID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoryRepository_GetByID(t *testing.T) {
	repo, mock, closeFn := newMockStoryRepo(t)
	defer closeFn()

	ctx := context.Background()

	t.Run("Успешное получение истории", func(t *testing.T) {
		rows := sqlmock.NewRows(storyColumns()).
			AddRow(storyRow("story-1", "Grandma's Kitchen", "draft", time.Now())...)

		mock.ExpectQuery("SELECT \\* FROM family_stories").
			WithArgs("story-1").
			WillReturnRows(rows)

		story, err := repo.GetByID(ctx, "story-1")

		require.NoError(t, err)
		assert.Equal(t, "story-1", story.StoryID)
		assert.Equal(t, models.StoryStatusDraft, story.Status)
	})

	t.Run("Неизвестный ID даёт ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM family_stories").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(storyColumns()))

		story, err := repo.GetByID(ctx, "missing")

		assert.Nil(t, story)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoryRepository_ListByStatus(t *testing.T) {
	repo, mock, closeFn := newMockStoryRepo(t)
	defer closeFn()

	now := time.Now()
	rows := sqlmock.NewRows(storyColumns()).
		AddRow(storyRow("story-2", "Newest", "published", now)...).
		AddRow(storyRow("story-1", "Oldest", "published", now.Add(-time.Hour))...)

	mock.ExpectQuery("SELECT \\* FROM family_stories").
		WithArgs(models.StoryStatusPublished).
		WillReturnRows(rows)

	stories, err := repo.ListByStatus(context.Background(), models.StoryStatusPublished)

	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "Newest", stories[0].Title)
}

func TestStoryRepository_Delete(t *testing.T) {
	repo, mock, closeFn := newMockStoryRepo(t)
	defer closeFn()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM family_stories").
		WithArgs("story-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM family_stories").
		WithArgs("story-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(ctx, "story-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "story-1"), ErrNotFound)
}

func TestStoryRepository_UpdateStatus(t *testing.T) {
	repo, mock, closeFn := newMockStoryRepo(t)
	defer closeFn()

	mock.ExpectExec("UPDATE family_stories SET").
		WithArgs(models.StoryStatusPublished, "story-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStatus(context.Background(), "story-1", models.StoryStatusPublished))
}
