package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// WorkPlanService manages per-day location overrides.
type WorkPlanService struct {
	store *store.Store
}

func NewWorkPlanService(documents *store.Store) *WorkPlanService {
	return &WorkPlanService{store: documents}
}

// PlanForDate returns the override for (userID, date), or nil when the user
// defers to their default location.
func (service *WorkPlanService) PlanForDate(ctx context.Context, userID, date string) (*models.DailyWorkPlan, error) {
	document, err := service.store.Get(ctx, models.CollectionWorkPlans, models.CompositeID(userID, date))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading work plan: %w", err)
	}

	var plan models.DailyWorkPlan
	if err := models.Decode(document.ID, document.Fields, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan upserts the override for (userID, date).
func (service *WorkPlanService) UpdatePlan(ctx context.Context, userID, date string, location models.WorkLocation) error {
	plan := models.DailyWorkPlan{UserID: userID, Date: date, Location: location}

	fields, err := models.Encode(plan)
	if err != nil {
		return err
	}
	if err := service.store.Put(ctx, models.CollectionWorkPlans, models.CompositeID(userID, date), fields); err != nil {
		return fmt.Errorf("saving work plan: %w", err)
	}
	return nil
}
