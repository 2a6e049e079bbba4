package handlers

import (
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type WorkPlanHandler struct {
	workPlanService *services.WorkPlanService
}

func NewWorkPlanHandler(workPlanService *services.WorkPlanService) *WorkPlanHandler {
	return &WorkPlanHandler{workPlanService: workPlanService}
}

// Get returns the current user's override for ?date=, or null when they
// defer to their default location.
func (handler *WorkPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	date := r.URL.Query().Get("date")
	if _, err := models.ParseDate(date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date is required as YYYY-MM-DD"})
		return
	}

	plan, err := handler.workPlanService.PlanForDate(r.Context(), user.ID, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Update upserts the current user's override for one date.
func (handler *WorkPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var request struct {
		Date     string `json:"date"`
		Location string `json:"location"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if _, err := models.ParseDate(request.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
		return
	}
	if !models.ValidWorkLocation(request.Location) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid work location"})
		return
	}

	if err := handler.workPlanService.UpdatePlan(r.Context(), user.ID, request.Date, models.WorkLocation(request.Location)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
