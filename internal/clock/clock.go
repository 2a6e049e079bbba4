// Package clock decouples the portal's time-of-day logic from the wall
// clock so reminder and deadline behavior can be driven at arbitrary speed.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// System follows the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Simulated keeps the wall clock's calendar date but lets the hour and
// minute be set explicitly. Advancing past midnight moves the date forward.
type Simulated struct {
	mu     sync.Mutex
	base   time.Time
	hour   int
	minute int
}

func NewSimulated(base time.Time) *Simulated {
	return &Simulated{base: base, hour: base.Hour(), minute: base.Minute()}
}

func (c *Simulated) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Date(c.base.Year(), c.base.Month(), c.base.Day(), c.hour, c.minute, 0, 0, c.base.Location())
}

// Set moves the simulated time of day without touching the date.
func (c *Simulated) Set(hour, minute int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hour = hour
	c.minute = minute
}

// AdvanceDay rolls the simulated date forward by one calendar day.
func (c *Simulated) AdvanceDay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = c.base.AddDate(0, 0, 1)
}
