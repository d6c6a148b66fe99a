package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"familycookbook/internal/service"
)

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// includeAllScope reports whether the caller asked for the unfiltered view
// on a public endpoint. Only admins get it.
func includeAllScope(r *http.Request) bool {
	role, _ := r.Context().Value("role").(string)
	return isAdmin(role) && r.URL.Query().Get("scope") == "all"
}

func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.RecipeService.List(r.Context(), includeAllScope(r))
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to fetch recipes.")
		return
	}

	WriteSuccess(w, recipes, http.StatusOK)
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	recipe, err := h.RecipeService.Get(r.Context(), recipeID, includeAllScope(r))
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to fetch recipe.")
		return
	}

	WriteSuccess(w, recipe, http.StatusOK)
}

// SubmitRecipe is the public submission path. Whatever the payload says,
// the stored status is pending.
func (h *Handlers) SubmitRecipe(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	recipe, err := h.RecipeService.Submit(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to create recipe.")
		return
	}

	WriteSuccess(w, recipe, http.StatusCreated)
}

func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	recipe, err := h.RecipeService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to create recipe.")
		return
	}

	WriteSuccess(w, recipe, http.StatusCreated)
}

func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	req, ok := h.decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	recipe, err := h.RecipeService.Update(r.Context(), recipeID, req)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to update recipe.")
		return
	}

	WriteSuccess(w, recipe, http.StatusOK)
}

func (h *Handlers) SetRecipeStatus(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	recipe, err := h.RecipeService.SetStatus(r.Context(), recipeID, req.Status)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to update recipe status.")
		return
	}

	WriteSuccess(w, recipe, http.StatusOK)
}

func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	if err := h.RecipeService.Delete(r.Context(), recipeID); err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to delete recipe.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AdminGetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.RecipeService.AdminList(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to fetch recipes.")
		return
	}

	WriteSuccess(w, recipes, http.StatusOK)
}

func (h *Handlers) AdminGetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	recipe, err := h.RecipeService.Get(r.Context(), recipeID, true)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to fetch recipe.")
		return
	}

	WriteSuccess(w, recipe, http.StatusOK)
}

func (h *Handlers) UploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["id"]

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("File is too large (max %d MB).",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Image file is required.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP.", http.StatusBadRequest)
		return
	}

	recipe, err := h.RecipeService.AttachImage(r.Context(), recipeID, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err, "Recipe not found.", "Failed to upload image.")
		return
	}

	WriteSuccess(w, recipe, http.StatusOK)
}

func (h *Handlers) decodeRecipeRequest(w http.ResponseWriter, r *http.Request) (service.SaveRecipeRequest, bool) {
	var req service.SaveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return req, false
	}

	req.Normalize()

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return req, false
	}

	return req, true
}
