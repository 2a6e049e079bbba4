package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeServiceError maps domain failures onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, map[string]string{"error": services.ErrDuplicateEmail.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": services.ErrInvalidCredentials.Error()})
	case errors.Is(err, services.ErrPastDeadline):
		writeJSON(w, http.StatusConflict, map[string]string{"error": services.ErrPastDeadline.Error()})
	case errors.Is(err, services.ErrEmptyMenu):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": services.ErrEmptyMenu.Error()})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// sanitizeUser strips the stored password before a user leaves the API.
func sanitizeUser(user models.User) models.User {
	user.Password = ""
	return user
}

func sanitizeUsers(users []models.User) []models.User {
	sanitized := make([]models.User, len(users))
	for i, user := range users {
		sanitized[i] = sanitizeUser(user)
	}
	return sanitized
}
