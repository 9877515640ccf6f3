package reminder

import (
	"context"
	"time"
)

// Callback is invoked when a reminder fires.
type Callback func(ctx context.Context, label string) error

// Handle is the cancellation token of one armed reminder.
type Handle interface {
	Label() string
	NextFire() time.Time
	// Cancel disarms the reminder unless it has been re-scheduled since the
	// handle was issued. It reports whether a timer was disarmed.
	Cancel() bool
}

type Armed struct {
	Label     string
	TimeOfDay TimeOfDay
	NextFire  time.Time
}

// Scheduler keeps at most one live daily timer per label.
type Scheduler interface {
	Schedule(label string, timeOfDay string, callback Callback) (Handle, error)
	Cancel(label string) bool
	CancelAll()
	Armed() []Armed
}
