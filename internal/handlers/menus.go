package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type MenuHandler struct {
	menuService *services.MenuService
	clock       clock.Clock
}

func NewMenuHandler(menuService *services.MenuService, clk clock.Clock) *MenuHandler {
	return &MenuHandler{menuService: menuService, clock: clk}
}

// Get returns the menu for ?date= (default today).
func (handler *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := handler.clock.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date"})
			return
		}
		date = parsed
	}

	menu, err := handler.menuService.MenuForDay(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (handler *MenuHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	weekday, mealType, ok := handler.menuParams(w, r)
	if !ok {
		return
	}

	var request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if request.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	item, err := handler.menuService.AddItem(r.Context(), weekday, mealType, models.MenuItem{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (handler *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	weekday, mealType, ok := handler.menuParams(w, r)
	if !ok {
		return
	}

	var item models.MenuItem
	if !decodeBody(w, r, &item) {
		return
	}
	item.ID = chi.URLParam(r, "itemID")

	if err := handler.menuService.UpdateItem(r.Context(), weekday, mealType, item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (handler *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	weekday, mealType, ok := handler.menuParams(w, r)
	if !ok {
		return
	}

	if err := handler.menuService.DeleteItem(r.Context(), weekday, mealType, chi.URLParam(r, "itemID")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (handler *MenuHandler) menuParams(w http.ResponseWriter, r *http.Request) (int, models.MealType, bool) {
	weekday, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || weekday < 0 || weekday > 6 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day must be 0-6"})
		return 0, "", false
	}

	mealType := chi.URLParam(r, "meal")
	if !models.ValidMealType(mealType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid meal type"})
		return 0, "", false
	}
	return weekday, models.MealType(mealType), true
}
