package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// MenuService reads and maintains the weekly menu templates. A calendar date
// resolves to the template for its weekday.
type MenuService struct {
	store *store.Store
}

func NewMenuService(documents *store.Store) *MenuService {
	return &MenuService{store: documents}
}

func (service *MenuService) MenuForDay(ctx context.Context, date time.Time) (models.DailyMenu, error) {
	weekday := int(date.Weekday())
	document, err := service.store.Get(ctx, models.CollectionWeeklyMenus, strconv.Itoa(weekday))
	if err != nil {
		return models.DailyMenu{}, fmt.Errorf("menu for weekday %d: %w", weekday, err)
	}

	var template models.WeeklyMenuTemplate
	if err := models.Decode(document.ID, document.Fields, &template); err != nil {
		return models.DailyMenu{}, err
	}

	return models.DailyMenu{
		Date:      models.DateString(date),
		Breakfast: template.Breakfast,
		Lunch:     template.Lunch,
		Snacks:    template.Snacks,
		Dinner:    template.Dinner,
	}, nil
}

// AddItem appends a menu item to one weekday's meal list and returns it with
// its generated id.
func (service *MenuService) AddItem(ctx context.Context, weekday int, mealType models.MealType, item models.MenuItem) (models.MenuItem, error) {
	item.ID = fmt.Sprintf("item-%d", time.Now().UnixMilli())

	err := service.mutateItems(ctx, weekday, mealType, func(items []models.MenuItem) []models.MenuItem {
		return append(items, item)
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// UpdateItem replaces the item with a matching id. A missing item id is a
// no-op, matching the store's partial-update semantics.
func (service *MenuService) UpdateItem(ctx context.Context, weekday int, mealType models.MealType, item models.MenuItem) error {
	return service.mutateItems(ctx, weekday, mealType, func(items []models.MenuItem) []models.MenuItem {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item
			}
		}
		return items
	})
}

func (service *MenuService) DeleteItem(ctx context.Context, weekday int, mealType models.MealType, itemID string) error {
	return service.mutateItems(ctx, weekday, mealType, func(items []models.MenuItem) []models.MenuItem {
		remaining := items[:0]
		for _, existing := range items {
			if existing.ID != itemID {
				remaining = append(remaining, existing)
			}
		}
		return remaining
	})
}

func (service *MenuService) mutateItems(ctx context.Context, weekday int, mealType models.MealType, mutate func([]models.MenuItem) []models.MenuItem) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("invalid weekday %d", weekday)
	}

	id := strconv.Itoa(weekday)
	document, err := service.store.Get(ctx, models.CollectionWeeklyMenus, id)
	if err != nil {
		return fmt.Errorf("menu for weekday %d: %w", weekday, err)
	}

	var template models.WeeklyMenuTemplate
	if err := models.Decode(document.ID, document.Fields, &template); err != nil {
		return err
	}

	var items []models.MenuItem
	switch mealType {
	case models.MealTypeBreakfast:
		items = mutate(template.Breakfast)
	case models.MealTypeLunch:
		items = mutate(template.Lunch)
	case models.MealTypeSnacks:
		items = mutate(template.Snacks)
	case models.MealTypeDinner:
		items = mutate(template.Dinner)
	default:
		return fmt.Errorf("invalid meal type %q", mealType)
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	return service.store.Update(ctx, models.CollectionWeeklyMenus, id, map[string]any{
		string(mealType): items,
	})
}
