package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns the notifications visible to the current user, newest first.
func (handler *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	notifications, err := handler.notificationService.ListForUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// Respond records the current user's yes/no answer.
func (handler *NotificationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var request struct {
		Response string `json:"response"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if request.Response != "yes" && request.Response != "no" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "response must be yes or no"})
		return
	}

	if err := handler.notificationService.Respond(r.Context(), chi.URLParam(r, "id"), user.ID, request.Response); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Send creates a notification (admin).
func (handler *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title          string `json:"title"`
		Message        string `json:"message"`
		RequiresAction bool   `json:"requiresAction"`
		Target         string `json:"target"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if request.Title == "" || request.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and message are required"})
		return
	}
	switch models.NotificationTarget(request.Target) {
	case "", models.TargetAll, models.TargetOfficeOnly:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid target"})
		return
	}

	sent, err := handler.notificationService.Send(r.Context(), models.Notification{
		Title:          request.Title,
		Message:        request.Message,
		RequiresAction: request.RequiresAction,
		Target:         models.NotificationTarget(request.Target),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sent)
}

// PublishMenu sends tomorrow's menu to employees planned to be in the office.
func (handler *NotificationHandler) PublishMenu(w http.ResponseWriter, r *http.Request) {
	sent, err := handler.notificationService.PublishTomorrowMenu(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sent)
}

// Tally returns yes/no/noResponse counts for one notification (admin).
func (handler *NotificationHandler) Tally(w http.ResponseWriter, r *http.Request) {
	tally, err := handler.notificationService.TallyFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tally)
}
