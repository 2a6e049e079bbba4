package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/testutil"
)

func TestICalHandler_MenuFeed(t *testing.T) {
	documents := testutil.NewTestStore(t)
	menuService := services.NewMenuService(documents)
	simulated := clock.NewSimulated(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local))
	handler := NewICalHandler(menuService, simulated)

	if err := services.SeedMenus(context.Background(), documents); err != nil {
		t.Fatalf("seeding menus: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/ical/menu", nil)
	recorder := httptest.NewRecorder()
	handler.MenuFeed(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/calendar") {
		t.Errorf("expected text/calendar content type, got %q", contentType)
	}

	feed := recorder.Body.String()
	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "BEGIN:VEVENT") {
		t.Error("expected a calendar with events")
	}
	if !strings.Contains(feed, "2024-06-10-Lunch@karmic-canteen") {
		t.Error("expected an event for today's lunch")
	}
}

func TestICalHandler_MenuFeedSkipsEmptyMeals(t *testing.T) {
	documents := testutil.NewTestStore(t)
	menuService := services.NewMenuService(documents)
	simulated := clock.NewSimulated(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local))
	handler := NewICalHandler(menuService, simulated)

	// Only Monday's lunch is populated; every other template is absent.
	template := models.WeeklyMenuTemplate{Lunch: []models.MenuItem{{ID: "item-1", Name: "Dal Tadka"}}}
	fields, err := models.Encode(template)
	if err != nil {
		t.Fatalf("encoding template: %v", err)
	}
	if err := documents.Put(context.Background(), models.CollectionWeeklyMenus, "1", fields); err != nil {
		t.Fatalf("seeding menu: %v", err)
	}

	recorder := httptest.NewRecorder()
	handler.MenuFeed(recorder, httptest.NewRequest(http.MethodGet, "/ical/menu", nil))

	feed := recorder.Body.String()
	if count := strings.Count(feed, "BEGIN:VEVENT"); count != 1 {
		t.Errorf("expected exactly one event, got %d", count)
	}
	if !strings.Contains(feed, "SUMMARY:Lunch: Dal Tadka") {
		t.Errorf("expected lunch summary in feed:\n%s", feed)
	}
}
