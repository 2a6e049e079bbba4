package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// ConfirmationService manages the one-document-per-user-per-day meal
// confirmations.
type ConfirmationService struct {
	store *store.Store
	clock clock.Clock
}

func NewConfirmationService(documents *store.Store, clk clock.Clock) *ConfirmationService {
	return &ConfirmationService{store: documents, clock: clk}
}

// ConfirmationForDate returns the user's confirmation for a date. An absent
// document means "not yet decided" and comes back as all four meals false.
func (service *ConfirmationService) ConfirmationForDate(ctx context.Context, userID, date string) (models.MealConfirmation, error) {
	document, err := service.store.Get(ctx, models.CollectionConfirmations, models.CompositeID(userID, date))
	if errors.Is(err, store.ErrNotFound) {
		return models.MealConfirmation{UserID: userID, Date: date}, nil
	}
	if err != nil {
		return models.MealConfirmation{}, fmt.Errorf("loading confirmation: %w", err)
	}

	var confirmation models.MealConfirmation
	if err := models.Decode(document.ID, document.Fields, &confirmation); err != nil {
		return models.MealConfirmation{}, err
	}
	return confirmation, nil
}

// ConfirmationsForWeek returns seven days of confirmations keyed by date,
// starting at weekStart.
func (service *ConfirmationService) ConfirmationsForWeek(ctx context.Context, userID string, weekStart time.Time) (map[string]models.MealConfirmation, error) {
	confirmations := make(map[string]models.MealConfirmation, 7)
	for i := 0; i < 7; i++ {
		date := models.DateString(weekStart.AddDate(0, 0, i))
		confirmation, err := service.ConfirmationForDate(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		confirmations[date] = confirmation
	}
	return confirmations, nil
}

// UpdateConfirmation toggles one meal for a user and date. The toggle is
// rejected once past the prior-day 12:30 deadline. The write reconstructs the
// full document from a fresh read, so concurrent toggles of different meals
// on the same document stay last-write-wins.
func (service *ConfirmationService) UpdateConfirmation(ctx context.Context, userID, date string, mealType models.MealType, status bool) (models.MealConfirmation, error) {
	mealDate, err := models.ParseDate(date)
	if err != nil {
		return models.MealConfirmation{}, fmt.Errorf("parsing date: %w", err)
	}
	if policy.IsPastDeadline(mealDate, service.clock.Now()) {
		return models.MealConfirmation{}, ErrPastDeadline
	}

	confirmation, err := service.ConfirmationForDate(ctx, userID, date)
	if err != nil {
		return models.MealConfirmation{}, err
	}
	confirmation.SetConfirmed(mealType, status)
	confirmation.ID = ""

	fields, err := models.Encode(confirmation)
	if err != nil {
		return models.MealConfirmation{}, err
	}
	id := models.CompositeID(userID, date)
	if err := service.store.Put(ctx, models.CollectionConfirmations, id, fields); err != nil {
		return models.MealConfirmation{}, fmt.Errorf("saving confirmation: %w", err)
	}

	return service.ConfirmationForDate(ctx, userID, date)
}
