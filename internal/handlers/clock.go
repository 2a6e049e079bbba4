package handlers

import (
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
)

// ClockHandler controls the simulated clock. It is only routed when the
// portal runs with CLOCK_MODE=simulated.
type ClockHandler struct {
	simulated *clock.Simulated
}

func NewClockHandler(simulated *clock.Simulated) *ClockHandler {
	return &ClockHandler{simulated: simulated}
}

func (handler *ClockHandler) Set(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Hour   int `json:"hour"`
		Minute int `json:"minute"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if request.Hour < 0 || request.Hour > 23 || request.Minute < 0 || request.Minute > 59 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hour must be 0-23 and minute 0-59"})
		return
	}

	handler.simulated.Set(request.Hour, request.Minute)
	writeJSON(w, http.StatusOK, map[string]int{"hour": request.Hour, "minute": request.Minute})
}

// AdvanceDay rolls the simulated date forward, resetting per-day reminder
// latches on the next tick.
func (handler *ClockHandler) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	handler.simulated.AdvanceDay()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
