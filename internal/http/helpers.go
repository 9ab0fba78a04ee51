package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/genai"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps a store or collaborator error onto an HTTP status and
// writes the message as a JSON body.
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), map[string]string{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, club.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, club.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, club.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, club.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, genai.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
