package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"familycookbook/internal/service"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return
	}

	token, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid username or password.", http.StatusUnauthorized)
			return
		}
		writeServiceError(w, err, "Not found.", "Login failed.")
		return
	}

	WriteSuccess(w, LoginResponse{Token: token}, http.StatusOK)
}
