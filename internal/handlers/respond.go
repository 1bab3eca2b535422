package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/school-gobackend/internal/services"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps an expected *APIError to its status and
// {"detail": ...} body; anything else is a 500.
func respondError(w http.ResponseWriter, log *zap.Logger, r *http.Request, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		respondJSON(w, apiErr.Status, map[string]string{"detail": apiErr.Detail})
		return
	}

	log.Error("request failed", zap.Error(err), zap.String("path", r.URL.Path), zap.String("method", r.Method))
	respondJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
}
