package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
)

type ReminderHandler struct {
	scheduler *policy.ReminderScheduler
}

func NewReminderHandler(scheduler *policy.ReminderScheduler) *ReminderHandler {
	return &ReminderHandler{scheduler: scheduler}
}

// Pending returns the current user's undismissed reminders.
func (handler *ReminderHandler) Pending(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, handler.scheduler.PendingFor(user.ID))
}

// Dismiss removes one pending reminder for the current user.
func (handler *ReminderHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	handler.scheduler.Dismiss(user.ID, chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
