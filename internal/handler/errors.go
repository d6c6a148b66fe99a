package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"familycookbook/internal/repository"
	"familycookbook/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse carries the field-level message list for a 422.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func WriteValidationErrors(w http.ResponseWriter, messages []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(ValidationResponse{Errors: messages})
}

// writeServiceError maps the workflow error taxonomy to HTTP. Store errors
// stay generic for the caller and get logged server-side.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage, genericMessage string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		WriteValidationErrors(w, validationErr.Errors)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		WriteError(w, notFoundMessage, http.StatusNotFound)
		return
	}

	log.Printf("Внутренняя ошибка: %v", err)
	WriteError(w, genericMessage, http.StatusInternalServerError)
}

var requiredFieldMessages = map[string]string{
	"Title":       "Title is required.",
	"Description": "Description is required.",
	"VideoURL":    "Video URL is required.",
	"Status":      "Status is required.",
	"Username":    "Username is required.",
	"Password":    "Password is required.",
}

// validationMessages turns validator field errors into the message list the
// front end displays.
func validationMessages(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid request payload."}
	}

	messages := []string{}
	for _, fe := range fieldErrs {
		if msg, ok := requiredFieldMessages[fe.Field()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fe.Field()+" is invalid.")
	}
	return messages
}
