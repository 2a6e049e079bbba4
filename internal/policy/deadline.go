// Package policy holds the time-windowed domain rules built on the document
// store: confirmation deadlines, work-location resolution, notification
// targeting, and meal reminders.
package policy

import "time"

const (
	deadlineHour   = 12
	deadlineMinute = 30
)

// IsPastDeadline reports whether a meal on mealDate can no longer be toggled.
// The deadline is 12:30 on the day before the meal, so for a meal dated
// "today" the deadline is always in the past: same-day opt-in is never
// allowed. The boundary instant itself counts as past.
func IsPastDeadline(mealDate, now time.Time) bool {
	deadline := time.Date(
		mealDate.Year(), mealDate.Month(), mealDate.Day(),
		deadlineHour, deadlineMinute, 0, 0, mealDate.Location(),
	).AddDate(0, 0, -1)

	return !now.Before(deadline)
}
