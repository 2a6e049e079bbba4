package policy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// TimeOfDay is a clock tick with minute resolution.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DefaultMealTimes are the canteen serving times that trigger "meal ready"
// events.
func DefaultMealTimes() map[models.MealType]TimeOfDay {
	return map[models.MealType]TimeOfDay{
		models.MealTypeBreakfast: {Hour: 8, Minute: 30},
		models.MealTypeLunch:     {Hour: 12, Minute: 0},
		models.MealTypeSnacks:    {Hour: 16, Minute: 30},
		models.MealTypeDinner:    {Hour: 19, Minute: 30},
	}
}

const (
	EventMealReady   = "meal_ready"
	EventSelectMeals = "select_meals"
)

// Event is a one reminder emission for one user.
type Event struct {
	ID       string            `json:"id"`
	UserID   string            `json:"userId"`
	Kind     string            `json:"kind"`
	MealType models.MealType   `json:"mealType,omitempty"`
	Date     string            `json:"date,omitempty"`
	Items    []models.MenuItem `json:"items,omitempty"`
	Menu     *models.DailyMenu `json:"menu,omitempty"`
}

// MenuSource resolves the menu for a calendar date. Implemented by the menu
// service; the scheduler only needs this one lookup.
type MenuSource interface {
	MenuForDay(ctx context.Context, date time.Time) (models.DailyMenu, error)
}

// ReminderScheduler drives the two reminder flows from an externally
// supplied clock tick:
//
//   - "meal ready" fires when the tick exactly equals a meal's configured
//     time, for in-office employees, at most once per meal per calendar day.
//     The per-day latches reset when the observed day-of-month changes.
//   - "select tomorrow's meals" fires at or after 12:30 for employees who
//     will be in the office tomorrow and have not confirmed any meal yet.
//     It is re-emitted on every qualifying tick and clears as soon as a meal
//     is confirmed or the plan stops pointing at the main office.
type ReminderScheduler struct {
	store     *store.Store
	resolver  *WorkPlanResolver
	menus     MenuSource
	mealTimes map[models.MealType]TimeOfDay

	mu      sync.Mutex
	day     int
	fired   map[string]bool
	pending map[string][]Event
}

func NewReminderScheduler(documents *store.Store, resolver *WorkPlanResolver, menus MenuSource) *ReminderScheduler {
	return &ReminderScheduler{
		store:     documents,
		resolver:  resolver,
		menus:     menus,
		mealTimes: DefaultMealTimes(),
		day:       -1,
		fired:     make(map[string]bool),
		pending:   make(map[string][]Event),
	}
}

// Evaluate advances the state machine to the given instant and returns the
// events emitted for that tick.
func (scheduler *ReminderScheduler) Evaluate(ctx context.Context, now time.Time) ([]Event, error) {
	employees, err := scheduler.employees(ctx)
	if err != nil {
		return nil, err
	}

	tick := TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}
	tomorrow := now.AddDate(0, 0, 1)

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	// Day rollover resets every meal-ready latch.
	if now.Day() != scheduler.day {
		scheduler.fired = make(map[string]bool)
		scheduler.day = now.Day()
	}

	var events []Event

	for _, employee := range employees {
		mealEvents, err := scheduler.evaluateMealReady(ctx, employee, tick, now)
		if err != nil {
			return nil, err
		}
		events = append(events, mealEvents...)

		selectEvent, err := scheduler.evaluateSelectReminder(ctx, employee, tick, tomorrow)
		if err != nil {
			return nil, err
		}
		if selectEvent != nil {
			events = append(events, *selectEvent)
		}
	}

	return events, nil
}

func (scheduler *ReminderScheduler) evaluateMealReady(ctx context.Context, employee models.User, tick TimeOfDay, now time.Time) ([]Event, error) {
	location, err := scheduler.resolver.EffectiveLocation(ctx, employee, models.DateString(now))
	if err != nil {
		return nil, err
	}
	if location != models.LocationMainOffice {
		return nil, nil
	}

	var events []Event
	for _, mealType := range models.MealTypes {
		mealTime, ok := scheduler.mealTimes[mealType]
		if !ok {
			continue
		}
		// Exact-minute match: a tick past the serving time never fires.
		if tick != mealTime {
			continue
		}
		latch := employee.ID + "/" + string(mealType)
		if scheduler.fired[latch] {
			continue
		}

		menu, err := scheduler.menus.MenuForDay(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("loading today's menu: %w", err)
		}

		event := Event{
			ID:       uuid.NewString(),
			UserID:   employee.ID,
			Kind:     EventMealReady,
			MealType: mealType,
			Items:    menu.Items(mealType),
		}
		scheduler.fired[latch] = true
		scheduler.pending[employee.ID] = append(scheduler.pending[employee.ID], event)
		events = append(events, event)
	}
	return events, nil
}

func (scheduler *ReminderScheduler) evaluateSelectReminder(ctx context.Context, employee models.User, tick TimeOfDay, tomorrow time.Time) (*Event, error) {
	qualifies := tick.Hour == 12 && tick.Minute >= 30

	tomorrowDate := models.DateString(tomorrow)
	if qualifies {
		location, err := scheduler.resolver.EffectiveLocation(ctx, employee, tomorrowDate)
		if err != nil {
			return nil, err
		}
		qualifies = location == models.LocationMainOffice
	}
	if qualifies {
		confirmed, err := scheduler.hasConfirmedAnyMeal(ctx, employee.ID, tomorrowDate)
		if err != nil {
			return nil, err
		}
		qualifies = !confirmed
	}

	if !qualifies {
		scheduler.removePendingSelect(employee.ID)
		return nil, nil
	}

	menu, err := scheduler.menus.MenuForDay(ctx, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("loading tomorrow's menu: %w", err)
	}

	event := Event{
		ID:     uuid.NewString(),
		UserID: employee.ID,
		Kind:   EventSelectMeals,
		Date:   tomorrowDate,
		Menu:   &menu,
	}
	// At most one pending select reminder per user; re-emission replaces it.
	scheduler.removePendingSelect(employee.ID)
	scheduler.pending[employee.ID] = append(scheduler.pending[employee.ID], event)
	return &event, nil
}

func (scheduler *ReminderScheduler) hasConfirmedAnyMeal(ctx context.Context, userID, date string) (bool, error) {
	document, err := scheduler.store.Get(ctx, models.CollectionConfirmations, models.CompositeID(userID, date))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var confirmation models.MealConfirmation
	if err := models.Decode(document.ID, document.Fields, &confirmation); err != nil {
		return false, err
	}
	return confirmation.AnyConfirmed(), nil
}

func (scheduler *ReminderScheduler) employees(ctx context.Context) ([]models.User, error) {
	documents, err := scheduler.store.List(ctx, models.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var employees []models.User
	for _, document := range documents {
		var user models.User
		if err := models.Decode(document.ID, document.Fields, &user); err != nil {
			return nil, err
		}
		if user.Role == models.RoleEmployee {
			employees = append(employees, user)
		}
	}
	return employees, nil
}

// PendingFor returns the user's undismissed reminders, oldest first.
func (scheduler *ReminderScheduler) PendingFor(userID string) []Event {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	pending := make([]Event, len(scheduler.pending[userID]))
	copy(pending, scheduler.pending[userID])
	return pending
}

// Dismiss drops one pending reminder. A select-meals reminder reappears on
// the next qualifying tick; a meal-ready reminder stays gone for the day.
func (scheduler *ReminderScheduler) Dismiss(userID, eventID string) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	remaining := scheduler.pending[userID][:0]
	for _, event := range scheduler.pending[userID] {
		if event.ID != eventID {
			remaining = append(remaining, event)
		}
	}
	scheduler.pending[userID] = remaining
}

func (scheduler *ReminderScheduler) removePendingSelect(userID string) {
	remaining := scheduler.pending[userID][:0]
	for _, event := range scheduler.pending[userID] {
		if event.Kind != EventSelectMeals {
			remaining = append(remaining, event)
		}
	}
	scheduler.pending[userID] = remaining
}
