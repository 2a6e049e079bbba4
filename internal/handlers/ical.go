package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

// ICalHandler exports the coming week's menu as an iCalendar feed, one event
// per meal at its serving time.
type ICalHandler struct {
	menuService *services.MenuService
	clock       clock.Clock
}

func NewICalHandler(menuService *services.MenuService, clk clock.Clock) *ICalHandler {
	return &ICalHandler{menuService: menuService, clock: clk}
}

func (handler *ICalHandler) MenuFeed(w http.ResponseWriter, r *http.Request) {
	calendar := ical.NewCalendar()
	calendar.SetMethod(ical.MethodPublish)
	calendar.SetProductId("-//Karmic Canteen//Menu//EN")

	now := handler.clock.Now()
	mealTimes := policy.DefaultMealTimes()

	for day := 0; day < 7; day++ {
		date := now.AddDate(0, 0, day)

		menu, err := handler.menuService.MenuForDay(r.Context(), date)
		if err != nil {
			continue
		}

		for _, mealType := range models.MealTypes {
			items := menu.Items(mealType)
			if len(items) == 0 {
				continue
			}
			mealTime := mealTimes[mealType]
			start := time.Date(date.Year(), date.Month(), date.Day(), mealTime.Hour, mealTime.Minute, 0, 0, date.Location())

			names := make([]string, len(items))
			for i, item := range items {
				names[i] = item.Name
			}

			event := calendar.AddEvent(fmt.Sprintf("%s-%s@karmic-canteen", menu.Date, mealType))
			event.SetCreatedTime(now)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(30 * time.Minute))
			event.SetSummary(fmt.Sprintf("%s: %s", mealType, strings.Join(names, ", ")))
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="canteen-menu.ics"`)
	if _, err := w.Write([]byte(calendar.Serialize())); err != nil {
		return
	}
}
