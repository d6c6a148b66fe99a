package handlers

import (
	"net/http"
)

type HealthResponse struct {
	OK            bool `json:"ok"`
	SchemaVersion int  `json:"schemaVersion"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "family-cookbook-api"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	version, err := h.HealthService.SchemaVersion(r.Context())
	if err != nil {
		writeServiceError(w, err, "Not found.", "Health check failed.")
		return
	}

	WriteSuccess(w, HealthResponse{OK: true, SchemaVersion: version}, http.StatusOK)
}
