package handlers

import (
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type ConfirmationHandler struct {
	confirmationService *services.ConfirmationService
}

func NewConfirmationHandler(confirmationService *services.ConfirmationService) *ConfirmationHandler {
	return &ConfirmationHandler{confirmationService: confirmationService}
}

// Week returns seven days of the current user's confirmations starting at
// ?week_start=.
func (handler *ConfirmationHandler) Week(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	weekStart, err := models.ParseDate(r.URL.Query().Get("week_start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week_start is required as YYYY-MM-DD"})
		return
	}

	confirmations, err := handler.confirmationService.ConfirmationsForWeek(r.Context(), user.ID, weekStart)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmations)
}

// Toggle opts the current user in or out of one meal on one date.
func (handler *ConfirmationHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var request struct {
		Date     string `json:"date"`
		MealType string `json:"mealType"`
		Status   bool   `json:"status"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if !models.ValidMealType(request.MealType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid meal type"})
		return
	}
	if _, err := models.ParseDate(request.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
		return
	}

	confirmation, err := handler.confirmationService.UpdateConfirmation(
		r.Context(), user.ID, request.Date, models.MealType(request.MealType), request.Status,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmation)
}
