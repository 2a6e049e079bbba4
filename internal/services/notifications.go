package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// NotificationService sends broadcasts, resolves per-user visibility, and
// records yes/no responses.
type NotificationService struct {
	store     *store.Store
	targeting *policy.Targeting
	menus     *MenuService
	clock     clock.Clock
}

func NewNotificationService(documents *store.Store, targeting *policy.Targeting, menus *MenuService, clk clock.Clock) *NotificationService {
	return &NotificationService{store: documents, targeting: targeting, menus: menus, clock: clk}
}

// Send stores a notification stamped with the current time.
func (service *NotificationService) Send(ctx context.Context, notification models.Notification) (models.Notification, error) {
	notification.Timestamp = service.clock.Now().UnixMilli()
	notification.ID = ""

	fields, err := models.Encode(notification)
	if err != nil {
		return models.Notification{}, err
	}
	id, err := service.store.Add(ctx, models.CollectionNotifications, fields)
	if err != nil {
		return models.Notification{}, fmt.Errorf("sending notification: %w", err)
	}

	notification.ID = id
	return notification, nil
}

// PublishTomorrowMenu formats tomorrow's menu into an office-only
// notification. Publishing an empty menu is rejected.
func (service *NotificationService) PublishTomorrowMenu(ctx context.Context) (models.Notification, error) {
	tomorrow := service.clock.Now().AddDate(0, 0, 1)

	menu, err := service.menus.MenuForDay(ctx, tomorrow)
	if err != nil {
		return models.Notification{}, fmt.Errorf("loading tomorrow's menu: %w", err)
	}

	message := formatMenuMessage(menu)
	if message == "" {
		return models.Notification{}, ErrEmptyMenu
	}

	return service.Send(ctx, models.Notification{
		Title:          fmt.Sprintf("Menu for Tomorrow (%s)", tomorrow.Format("Monday, Jan 2")),
		Message:        message,
		RequiresAction: false,
		Target:         models.TargetOfficeOnly,
	})
}

// Respond records one user's yes/no answer. A later response overwrites the
// earlier one; there is no versioning.
func (service *NotificationService) Respond(ctx context.Context, notificationID, userID, response string) error {
	if response != "yes" && response != "no" {
		return fmt.Errorf("invalid response %q", response)
	}

	document, err := service.store.Get(ctx, models.CollectionNotifications, notificationID)
	if err != nil {
		return fmt.Errorf("loading notification: %w", err)
	}

	var notification models.Notification
	if err := models.Decode(document.ID, document.Fields, &notification); err != nil {
		return err
	}
	if notification.Responses == nil {
		notification.Responses = make(map[string]string)
	}
	notification.Responses[userID] = response

	return service.store.Update(ctx, models.CollectionNotifications, notificationID, map[string]any{
		"responses": notification.Responses,
	})
}

// ListForUser returns the notifications the user is eligible to see, newest
// first. Eligibility follows each notification's target against the user's
// effective location for tomorrow.
func (service *NotificationService) ListForUser(ctx context.Context, user models.User) ([]models.Notification, error) {
	if user.Role != models.RoleEmployee {
		return []models.Notification{}, nil
	}

	notifications, err := service.list(ctx)
	if err != nil {
		return nil, err
	}

	tomorrow := models.DateString(service.clock.Now().AddDate(0, 0, 1))

	visible := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		recipients, err := service.targeting.EligibleRecipients(ctx, []models.User{user}, notification.Target, tomorrow)
		if err != nil {
			return nil, err
		}
		if _, ok := recipients[user.ID]; ok {
			visible = append(visible, notification)
		}
	}
	return visible, nil
}

// TallyFor aggregates responses for one notification.
func (service *NotificationService) TallyFor(ctx context.Context, notificationID string) (policy.Tally, error) {
	document, err := service.store.Get(ctx, models.CollectionNotifications, notificationID)
	if err != nil {
		return policy.Tally{}, fmt.Errorf("loading notification: %w", err)
	}

	var notification models.Notification
	if err := models.Decode(document.ID, document.Fields, &notification); err != nil {
		return policy.Tally{}, err
	}

	users, err := listUsers(ctx, service.store)
	if err != nil {
		return policy.Tally{}, err
	}
	return service.targeting.Tally(notification, users), nil
}

func (service *NotificationService) list(ctx context.Context) ([]models.Notification, error) {
	documents, err := service.store.List(ctx, models.CollectionNotifications)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	notifications := make([]models.Notification, 0, len(documents))
	for _, document := range documents {
		var notification models.Notification
		if err := models.Decode(document.ID, document.Fields, &notification); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp > notifications[j].Timestamp
	})
	return notifications, nil
}

func formatMenuMessage(menu models.DailyMenu) string {
	var parts []string
	for _, mealType := range models.MealTypes {
		items := menu.Items(mealType)
		if len(items) == 0 {
			continue
		}
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		parts = append(parts, fmt.Sprintf("%s: %s.", mealType, strings.Join(names, ", ")))
	}
	return strings.Join(parts, " ")
}
