package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

type ReportHandler struct {
	reportService *services.ReportService
	store         *store.Store
}

func NewReportHandler(reportService *services.ReportService, documents *store.Store) *ReportHandler {
	return &ReportHandler{reportService: reportService, store: documents}
}

func (handler *ReportHandler) Consolidated(w http.ResponseWriter, r *http.Request) {
	report, err := handler.reportService.ConsolidatedReport(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (handler *ReportHandler) Details(w http.ResponseWriter, r *http.Request) {
	details, err := handler.reportService.EmployeeConfirmationDetails(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	for i := range details {
		details[i].Password = ""
	}
	writeJSON(w, http.StatusOK, details)
}

func (handler *ReportHandler) Waste(w http.ResponseWriter, r *http.Request) {
	analytics, err := handler.reportService.WasteAnalytics(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

func (handler *ReportHandler) Workforce(w http.ResponseWriter, r *http.Request) {
	distribution, err := handler.reportService.WorkforceDistribution(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distribution)
}

type dashboardUpdate struct {
	Report  []models.ConsolidatedReport          `json:"report"`
	Details []models.EmployeeConfirmationDetails `json:"details"`
}

// Stream pushes dashboard updates over server-sent events. It subscribes to
// the confirmations collection, so the first event arrives immediately and a
// fresh one follows every confirmation change.
func (handler *ReportHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Snapshots arrive on the mutating goroutine; signal the handler
	// goroutine instead of writing the response from the callback.
	updates := make(chan struct{}, 1)
	unsubscribe, err := handler.store.Subscribe(models.CollectionConfirmations, func(store.Snapshot) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-updates:
			update, err := handler.buildUpdate(r)
			if err != nil {
				slog.Error("building dashboard update", "error", err)
				continue
			}
			payload, err := json.Marshal(update)
			if err != nil {
				slog.Error("encoding dashboard update", "error", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func (handler *ReportHandler) buildUpdate(r *http.Request) (dashboardUpdate, error) {
	report, err := handler.reportService.ConsolidatedReport(r.Context())
	if err != nil {
		return dashboardUpdate{}, err
	}
	details, err := handler.reportService.EmployeeConfirmationDetails(r.Context())
	if err != nil {
		return dashboardUpdate{}, err
	}
	for i := range details {
		details[i].Password = ""
	}
	return dashboardUpdate{Report: report, Details: details}, nil
}
