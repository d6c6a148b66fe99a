package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"familycookbook/internal/models"
	"familycookbook/internal/repository"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(ctx context.Context, story *models.FamilyStory) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetByID(ctx context.Context, storyID string) (*models.FamilyStory, error) {
	args := m.Called(ctx, storyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyStory), args.Error(1)
}

func (m *MockStoryRepository) ListAll(ctx context.Context) ([]models.FamilyStory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyStory), args.Error(1)
}

func (m *MockStoryRepository) ListByStatus(ctx context.Context, status string) ([]models.FamilyStory, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyStory), args.Error(1)
}

func (m *MockStoryRepository) Update(ctx context.Context, story *models.FamilyStory) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) UpdateStatus(ctx context.Context, storyID, status string) error {
	args := m.Called(ctx, storyID, status)
	return args.Error(0)
}

func (m *MockStoryRepository) Delete(ctx context.Context, storyID string) error {
	args := m.Called(ctx, storyID)
	return args.Error(0)
}

func (m *MockStoryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestStoryService_Create(t *testing.T) {
	tests := []struct {
		name           string
		payloadStatus  string
		expectedStatus string
	}{
		{"статус по умолчанию published", "", models.StoryStatusPublished},
		{"DRAFT в любом регистре", "DRAFT", models.StoryStatusDraft},
		{"статус вне enum даёт published", "pending", models.StoryStatusPublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStoryRepository)
			repo.On("Create", mock.Anything, mock.Anything).Return(nil)

			svc := NewStoryService(repo)

			story, err := svc.Create(context.Background(), SaveStoryRequest{
				Title:    "Grandma's Kitchen",
				VideoURL: "https://example.com/v",
				Status:   tt.payloadStatus,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, story.Status)
		})
	}
}

func TestStoryService_CreateValidation(t *testing.T) {
	repo := new(MockStoryRepository)
	svc := NewStoryService(repo)

	_, err := svc.Create(context.Background(), SaveStoryRequest{
		Title:    "",
		VideoURL: "   ",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "Title is required.")
	assert.Contains(t, validationErr.Errors, "Video URL is required.")
	repo.AssertNotCalled(t, "Create")
}

func TestStoryService_UpdateKeepsStatus(t *testing.T) {
	existing := &models.FamilyStory{
		StoryID:  "story-1",
		Title:    "Grandma's Kitchen",
		VideoURL: "https://example.com/v",
		Status:   models.StoryStatusPublished,
	}

	repo := new(MockStoryRepository)
	repo.On("GetByID", mock.Anything, "story-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewStoryService(repo)

	story, err := svc.Update(context.Background(), "story-1", SaveStoryRequest{
		Title:    "Grandma's Kitchen, 1987",
		VideoURL: "https://example.com/v",
	})

	require.NoError(t, err)
	assert.Equal(t, models.StoryStatusPublished, story.Status)
}

func TestStoryService_GetVisibility(t *testing.T) {
	draft := &models.FamilyStory{StoryID: "story-1", Status: models.StoryStatusDraft}

	t.Run("draft скрыт от публики", func(t *testing.T) {
		repo := new(MockStoryRepository)
		repo.On("GetByID", mock.Anything, "story-1").Return(draft, nil)

		svc := NewStoryService(repo)

		_, err := svc.Get(context.Background(), "story-1", false)

		// именно not found, а не запрет доступа
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("админ видит draft", func(t *testing.T) {
		repo := new(MockStoryRepository)
		repo.On("GetByID", mock.Anything, "story-1").Return(draft, nil)

		svc := NewStoryService(repo)

		story, err := svc.Get(context.Background(), "story-1", true)

		require.NoError(t, err)
		assert.Equal(t, models.StoryStatusDraft, story.Status)
	})
}

func TestStoryService_SetStatusInvalid(t *testing.T) {
	repo := new(MockStoryRepository)
	svc := NewStoryService(repo)

	_, err := svc.SetStatus(context.Background(), "story-1", "approved")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestStoryService_AdminListFilter(t *testing.T) {
	repo := new(MockStoryRepository)
	repo.On("ListByStatus", mock.Anything, models.StoryStatusDraft).
		Return([]models.FamilyStory{{Status: "draft"}}, nil)

	svc := NewStoryService(repo)

	stories, err := svc.AdminList(context.Background(), "Draft")

	require.NoError(t, err)
	assert.Len(t, stories, 1)
}
