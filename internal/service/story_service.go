package service

import (
	"context"
	"fmt"
	"strings"

	"familycookbook/internal/models"
	"familycookbook/internal/repository"
)

type SaveStoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" validate:"required"`
	Status      string `json:"status"`
}

func (r *SaveStoryRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.VideoURL = strings.TrimSpace(r.VideoURL)
	r.Status = strings.TrimSpace(r.Status)
}

// StoryService mirrors the recipe workflow for the video archive. Stories
// have no public submission path, admins are the only writers.
type StoryService interface {
	List(ctx context.Context, includeAll bool) ([]models.FamilyStory, error)
	Get(ctx context.Context, storyID string, includeAll bool) (*models.FamilyStory, error)
	Create(ctx context.Context, req SaveStoryRequest) (*models.FamilyStory, error)
	Update(ctx context.Context, storyID string, req SaveStoryRequest) (*models.FamilyStory, error)
	SetStatus(ctx context.Context, storyID, status string) (*models.FamilyStory, error)
	Delete(ctx context.Context, storyID string) error
	AdminList(ctx context.Context, statusFilter string) ([]models.FamilyStory, error)
}

type storyService struct {
	storyRepo repository.StoryRepository
}

func NewStoryService(storyRepo repository.StoryRepository) StoryService {
	return &storyService{storyRepo: storyRepo}
}

func (s *storyService) List(ctx context.Context, includeAll bool) ([]models.FamilyStory, error) {
	if includeAll {
		return s.storyRepo.ListAll(ctx)
	}
	return s.storyRepo.ListByStatus(ctx, models.StoryStatusPublished)
}

func (s *storyService) Get(ctx context.Context, storyID string, includeAll bool) (*models.FamilyStory, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}

	// draft stories look missing to the public, not forbidden
	if !includeAll && story.Status != models.StoryStatusPublished {
		return nil, fmt.Errorf("история с ID %s: %w", storyID, repository.ErrNotFound)
	}

	return story, nil
}

func (s *storyService) Create(ctx context.Context, req SaveStoryRequest) (*models.FamilyStory, error) {
	req.Normalize()
	if err := validateStory(req); err != nil {
		return nil, err
	}

	story := &models.FamilyStory{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Status:      models.NormalizeStoryStatus(req.Status, models.StoryStatusPublished),
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *storyService) Update(ctx context.Context, storyID string, req SaveStoryRequest) (*models.FamilyStory, error) {
	req.Normalize()
	if err := validateStory(req); err != nil {
		return nil, err
	}

	existing, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, err
	}

	story := &models.FamilyStory{
		StoryID:     existing.StoryID,
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Status:      models.NormalizeStoryStatus(req.Status, existing.Status),
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (s *storyService) SetStatus(ctx context.Context, storyID, status string) (*models.FamilyStory, error) {
	if !models.IsValidStoryStatus(status) {
		return nil, newValidationError("Status must be one of: draft, published.")
	}

	normalized := models.NormalizeStoryStatus(status, "")

	if err := s.storyRepo.UpdateStatus(ctx, storyID, normalized); err != nil {
		return nil, err
	}

	return s.storyRepo.GetByID(ctx, storyID)
}

func (s *storyService) Delete(ctx context.Context, storyID string) error {
	return s.storyRepo.Delete(ctx, storyID)
}

func (s *storyService) AdminList(ctx context.Context, statusFilter string) ([]models.FamilyStory, error) {
	if models.IsValidStoryStatus(statusFilter) {
		return s.storyRepo.ListByStatus(ctx, models.NormalizeStoryStatus(statusFilter, ""))
	}
	return s.storyRepo.ListAll(ctx)
}

func validateStory(req SaveStoryRequest) error {
	errs := []string{}
	if req.Title == "" {
		errs = append(errs, "Title is required.")
	}
	if req.VideoURL == "" {
		errs = append(errs, "Video URL is required.")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
