package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"familycookbook/internal/models"
	"familycookbook/internal/service"
)

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) List(ctx context.Context, includeAll bool) ([]models.Recipe, error) {
	args := m.Called(ctx, includeAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, recipeID string, includeAll bool) (*models.Recipe, error) {
	args := m.Called(ctx, recipeID, includeAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Submit(ctx context.Context, req service.SaveRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Create(ctx context.Context, req service.SaveRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, recipeID string, req service.SaveRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, recipeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) SetStatus(ctx context.Context, recipeID, status string) (*models.Recipe, error) {
	args := m.Called(ctx, recipeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, recipeID string) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

func (m *MockRecipeService) AdminList(ctx context.Context, statusFilter string) ([]models.Recipe, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) AttachImage(ctx context.Context, recipeID, fileName string, file io.Reader, size int64) (*models.Recipe, error) {
	args := m.Called(ctx, recipeID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

type MockStoryService struct {
	mock.Mock
}

func (m *MockStoryService) List(ctx context.Context, includeAll bool) ([]models.FamilyStory, error) {
	args := m.Called(ctx, includeAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyStory), args.Error(1)
}

func (m *MockStoryService) Get(ctx context.Context, storyID string, includeAll bool) (*models.FamilyStory, error) {
	args := m.Called(ctx, storyID, includeAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyStory), args.Error(1)
}

func (m *MockStoryService) Create(ctx context.Context, req service.SaveStoryRequest) (*models.FamilyStory, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyStory), args.Error(1)
}

func (m *MockStoryService) Update(ctx context.Context, storyID string, req service.SaveStoryRequest) (*models.FamilyStory, error) {
	args := m.Called(ctx, storyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyStory), args.Error(1)
}

func (m *MockStoryService) SetStatus(ctx context.Context, storyID, status string) (*models.FamilyStory, error) {
	args := m.Called(ctx, storyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FamilyStory), args.Error(1)
}

func (m *MockStoryService) Delete(ctx context.Context, storyID string) error {
	args := m.Called(ctx, storyID)
	return args.Error(0)
}

func (m *MockStoryService) AdminList(ctx context.Context, statusFilter string) ([]models.FamilyStory, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FamilyStory), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) ClassifyRole(tokenString string) string {
	args := m.Called(tokenString)
	return args.String(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) SchemaVersion(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
