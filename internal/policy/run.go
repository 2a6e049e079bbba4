package policy

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
)

// Run polls the clock and evaluates the scheduler once per observed minute
// until the context is canceled. The clock may be simulated, so the poll is
// frequent and cheap; Evaluate only runs when the minute changes.
func (scheduler *ReminderScheduler) Run(ctx context.Context, clk clock.Clock) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := clk.Now()
			if now.Truncate(time.Minute).Equal(last) {
				continue
			}
			last = now.Truncate(time.Minute)

			events, err := scheduler.Evaluate(ctx, now)
			if err != nil {
				slog.Error("evaluating reminders", "error", err)
				continue
			}
			for _, event := range events {
				slog.Info("reminder fired", "kind", event.Kind, "user", event.UserID, "meal", event.MealType)
			}
		}
	}
}
