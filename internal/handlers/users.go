package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

// UserHandler exposes the main-admin account management endpoints.
type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (handler *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := handler.userService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sanitizeUsers(users))
}

// Update merges arbitrary user fields; the store's schema check rejects
// unknown ones.
func (handler *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var partial map[string]any
	if !decodeBody(w, r, &partial) {
		return
	}
	delete(partial, "id")

	if err := handler.userService.Update(r.Context(), chi.URLParam(r, "id"), partial); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
