package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"familycookbook/internal/service"
)

func (h *Handlers) GetStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.StoryService.List(r.Context(), includeAllScope(r))
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to fetch family stories.")
		return
	}

	WriteSuccess(w, stories, http.StatusOK)
}

func (h *Handlers) GetStory(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	story, err := h.StoryService.Get(r.Context(), storyID, includeAllScope(r))
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to fetch family story.")
		return
	}

	WriteSuccess(w, story, http.StatusOK)
}

func (h *Handlers) CreateStory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeStoryRequest(w, r)
	if !ok {
		return
	}

	story, err := h.StoryService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to create family story.")
		return
	}

	WriteSuccess(w, story, http.StatusCreated)
}

func (h *Handlers) UpdateStory(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	req, ok := h.decodeStoryRequest(w, r)
	if !ok {
		return
	}

	story, err := h.StoryService.Update(r.Context(), storyID, req)
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to update family story.")
		return
	}

	WriteSuccess(w, story, http.StatusOK)
}

func (h *Handlers) SetStoryStatus(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	story, err := h.StoryService.SetStatus(r.Context(), storyID, req.Status)
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to update story status.")
		return
	}

	WriteSuccess(w, story, http.StatusOK)
}

func (h *Handlers) DeleteStory(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	if err := h.StoryService.Delete(r.Context(), storyID); err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to delete family story.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AdminGetStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.StoryService.AdminList(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to fetch family stories.")
		return
	}

	WriteSuccess(w, stories, http.StatusOK)
}

func (h *Handlers) AdminGetStory(w http.ResponseWriter, r *http.Request) {
	storyID := mux.Vars(r)["id"]

	story, err := h.StoryService.Get(r.Context(), storyID, true)
	if err != nil {
		writeServiceError(w, err, "Story not found.", "Failed to fetch family story.")
		return
	}

	WriteSuccess(w, story, http.StatusOK)
}

func (h *Handlers) decodeStoryRequest(w http.ResponseWriter, r *http.Request) (service.SaveStoryRequest, bool) {
	var req service.SaveStoryRequest
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
