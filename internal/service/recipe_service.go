package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"familycookbook/internal/config"
	"familycookbook/internal/models"
	"familycookbook/internal/repository"
	"familycookbook/internal/storage"
)

type SaveRecipeRequest struct {
	Title          string            `json:"title" validate:"required"`
	Description    string            `json:"description" validate:"required"`
	CookTime       string            `json:"cookTime"`
	Servings       string            `json:"servings"`
	Ingredients    models.StringList `json:"ingredients"`
	Instructions   models.StringList `json:"instructions"`
	ImageURL       string            `json:"imageUrl"`
	Status         string            `json:"status"`
	SubmitterName  string            `json:"submitterName"`
	SubmitterEmail string            `json:"submitterEmail"`
	SubmitterNotes string            `json:"submitterNotes"`
}

// Normalize trims every scalar field. List fields are already cleaned by
// the StringList decoder.
func (r *SaveRecipeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.CookTime = strings.TrimSpace(r.CookTime)
	r.Servings = strings.TrimSpace(r.Servings)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Status = strings.TrimSpace(r.Status)
	r.SubmitterName = strings.TrimSpace(r.SubmitterName)
	r.SubmitterEmail = strings.TrimSpace(r.SubmitterEmail)
	r.SubmitterNotes = strings.TrimSpace(r.SubmitterNotes)
}

type RecipeService interface {
	List(ctx context.Context, includeAll bool) ([]models.Recipe, error)
	Get(ctx context.Context, recipeID string, includeAll bool) (*models.Recipe, error)
	Submit(ctx context.Context, req SaveRecipeRequest) (*models.Recipe, error)
	Create(ctx context.Context, req SaveRecipeRequest) (*models.Recipe, error)
	Update(ctx context.Context, recipeID string, req SaveRecipeRequest) (*models.Recipe, error)
	SetStatus(ctx context.Context, recipeID, status string) (*models.Recipe, error)
	Delete(ctx context.Context, recipeID string) error
	AdminList(ctx context.Context, statusFilter string) ([]models.Recipe, error)
	AttachImage(ctx context.Context, recipeID, fileName string, file io.Reader, size int64) (*models.Recipe, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	storage    storage.Storage
	cfg        *config.Config
}

func NewRecipeService(recipeRepo repository.RecipeRepository, storage storage.Storage, cfg *config.Config) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

// List returns the public catalog. Only an admin caller with the explicit
// "all" scope gets unapproved records here.
func (s *recipeService) List(ctx context.Context, includeAll bool) ([]models.Recipe, error) {
	if includeAll {
		return s.recipeRepo.ListAll(ctx)
	}
	return s.recipeRepo.ListByStatus(ctx, models.RecipeStatusApproved)
}

// Get hides unapproved records behind a not-found error, so the public
// cannot probe for pending or rejected ids.
func (s *recipeService) Get(ctx context.Context, recipeID string, includeAll bool) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if !includeAll && recipe.Status != models.RecipeStatusApproved {
		return nil, fmt.Errorf("рецепт с ID %s: %w", recipeID, repository.ErrNotFound)
	}

	return recipe, nil
}

// Submit is the public path: the status is forced to pending no matter
// what the payload carried.
func (s *recipeService) Submit(ctx context.Context, req SaveRecipeRequest) (*models.Recipe, error) {
	req.Normalize()
	if err := validateRecipe(req); err != nil {
		return nil, err
	}

	recipe := recipeFromRequest(req)
	recipe.Status = models.RecipeStatusPending

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) Create(ctx context.Context, req SaveRecipeRequest) (*models.Recipe, error) {
	req.Normalize()
	if err := validateRecipe(req); err != nil {
		return nil, err
	}

	recipe := recipeFromRequest(req)
	recipe.Status = models.NormalizeRecipeStatus(req.Status, models.RecipeStatusApproved)

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// Update replaces every field. An omitted or unrecognized status keeps the
// record's current status, so a plain edit never un-approves a recipe.
func (s *recipeService) Update(ctx context.Context, recipeID string, req SaveRecipeRequest) (*models.Recipe, error) {
	req.Normalize()
	if err := validateRecipe(req); err != nil {
		return nil, err
	}

	existing, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	recipe := recipeFromRequest(req)
	recipe.RecipeID = existing.RecipeID
	recipe.CreatedAt = existing.CreatedAt
	recipe.Status = models.NormalizeRecipeStatus(req.Status, existing.Status)

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// SetStatus is the strict transition endpoint: the value must match the
// enum, otherwise nothing is written. Any valid status may move to any
// other valid status.
func (s *recipeService) SetStatus(ctx context.Context, recipeID, status string) (*models.Recipe, error) {
	if !models.IsValidRecipeStatus(status) {
		return nil, newValidationError("Status must be one of: pending, approved, rejected.")
	}

	normalized := models.NormalizeRecipeStatus(status, "")

	if err := s.recipeRepo.UpdateStatus(ctx, recipeID, normalized); err != nil {
		return nil, err
	}

	return s.recipeRepo.GetByID(ctx, recipeID)
}

func (s *recipeService) Delete(ctx context.Context, recipeID string) error {
	return s.recipeRepo.Delete(ctx, recipeID)
}

// AdminList always sees every status; a status filter outside the enum is
// ignored and yields the unfiltered list.
func (s *recipeService) AdminList(ctx context.Context, statusFilter string) ([]models.Recipe, error) {
	if models.IsValidRecipeStatus(statusFilter) {
		return s.recipeRepo.ListByStatus(ctx, models.NormalizeRecipeStatus(statusFilter, ""))
	}
	return s.recipeRepo.ListAll(ctx)
}

func (s *recipeService) AttachImage(ctx context.Context, recipeID, fileName string, file io.Reader, size int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	_, imageURL, err := s.storage.UploadImage(ctx, recipe.RecipeID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	if err := s.recipeRepo.UpdateImageURL(ctx, recipe.RecipeID, imageURL); err != nil {
		return nil, err
	}

	recipe.ImageURL = imageURL
	return recipe, nil
}

func validateRecipe(req SaveRecipeRequest) error {
	errs := []string{}
	if req.Title == "" {
		errs = append(errs, "Title is required.")
	}
	if req.Description == "" {
		errs = append(errs, "Description is required.")
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func recipeFromRequest(req SaveRecipeRequest) *models.Recipe {
	return &models.Recipe{
		Title:          req.Title,
		Description:    req.Description,
		CookTime:       req.CookTime,
		Servings:       req.Servings,
		Ingredients:    req.Ingredients,
		Instructions:   req.Instructions,
		ImageURL:       req.ImageURL,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
		SubmitterNotes: req.SubmitterNotes,
	}
}
