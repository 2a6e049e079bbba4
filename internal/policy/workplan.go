package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// WorkPlanResolver resolves a user's effective work location for a date.
// Every consumer of location — planning, headcounts, targeting, reminders —
// goes through here so all call sites agree.
type WorkPlanResolver struct {
	store *store.Store
}

func NewWorkPlanResolver(documents *store.Store) *WorkPlanResolver {
	return &WorkPlanResolver{store: documents}
}

// EffectiveLocation returns the per-day override when one exists, otherwise
// the user's permanent default.
func (resolver *WorkPlanResolver) EffectiveLocation(ctx context.Context, user models.User, date string) (models.WorkLocation, error) {
	document, err := resolver.store.Get(ctx, models.CollectionWorkPlans, models.CompositeID(user.ID, date))
	if errors.Is(err, store.ErrNotFound) {
		return user.WorkLocation, nil
	}
	if err != nil {
		return "", fmt.Errorf("resolving work plan: %w", err)
	}

	var plan models.DailyWorkPlan
	if err := models.Decode(document.ID, document.Fields, &plan); err != nil {
		return "", err
	}
	return plan.Location, nil
}
