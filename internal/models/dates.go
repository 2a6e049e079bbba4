package models

import "time"

// DateLayout is the calendar-day format used for confirmation, work-plan,
// and feedback dates.
const DateLayout = "2006-01-02"

func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
