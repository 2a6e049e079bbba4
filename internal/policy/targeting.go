package policy

import (
	"context"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
)

// Targeting computes who receives a notification and how its responses
// tally up.
type Targeting struct {
	resolver *WorkPlanResolver
}

func NewTargeting(resolver *WorkPlanResolver) *Targeting {
	return &Targeting{resolver: resolver}
}

// EligibleRecipients returns the user ids that should receive a notification.
// Target "all" (or absent) reaches every employee; "office_only" reaches the
// employees whose effective location on date resolves to the main office.
// date is the notification's intended day — for menu-publish notifications
// that is always tomorrow relative to send time.
func (t *Targeting) EligibleRecipients(ctx context.Context, users []models.User, target models.NotificationTarget, date string) (map[string]struct{}, error) {
	recipients := make(map[string]struct{})
	for _, user := range users {
		if user.Role != models.RoleEmployee {
			continue
		}
		if target == models.TargetOfficeOnly {
			location, err := t.resolver.EffectiveLocation(ctx, user, date)
			if err != nil {
				return nil, err
			}
			if location != models.LocationMainOffice {
				continue
			}
		}
		recipients[user.ID] = struct{}{}
	}
	return recipients, nil
}

// Tally aggregates a notification's responses. noResponse always measures
// against the full employee population, even for office_only notifications.
// That inflates noResponse with ineligible users; the behavior is kept
// deliberately (see DESIGN.md).
type Tally struct {
	Yes        int `json:"yes"`
	No         int `json:"no"`
	NoResponse int `json:"noResponse"`
}

func (t *Targeting) Tally(notification models.Notification, users []models.User) Tally {
	tally := Tally{}
	for _, response := range notification.Responses {
		switch response {
		case "yes":
			tally.Yes++
		case "no":
			tally.No++
		}
	}

	employees := 0
	for _, user := range users {
		if user.Role == models.RoleEmployee {
			employees++
		}
	}
	tally.NoResponse = employees - tally.Yes - tally.No
	return tally
}
