package reminder

import (
	"fmt"
	"time"

	e "nutritrack/internal/core/domain/errors"
)

var ErrInvalidTimeOfDay = fmt.Errorf("%w: time of day must be formatted as HH:MM", e.ErrInvalidArgument)

// TimeOfDay is a wall-clock time, minute precision.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func MustTimeOfDay(value string) TimeOfDay {
	t, err := ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}
	return t
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != 5 || value[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, ok := twoDigits(value[0:2])
	if !ok {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, ok := twoDigits(value[3:5])
	if !ok {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On returns the instant of t on the calendar day of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}

// NextAfter returns the first occurrence of t strictly after now.
func (t TimeOfDay) NextAfter(now time.Time) time.Time {
	next := t.On(now)
	if !next.After(now) {
		next = t.On(time.Date(now.Year(), now.Month(), now.Day()+1, 12, 0, 0, 0, now.Location()))
	}
	return next
}

// LatestAtOrBefore returns the most recent occurrence of t not after now.
func (t TimeOfDay) LatestAtOrBefore(now time.Time) time.Time {
	latest := t.On(now)
	if latest.After(now) {
		latest = t.On(time.Date(now.Year(), now.Month(), now.Day()-1, 12, 0, 0, 0, now.Location()))
	}
	return latest
}

// FollowingDay returns the occurrence of t on the calendar day after fired.
// The wall-clock time is kept across daylight saving shifts.
func (t TimeOfDay) FollowingDay(fired time.Time) time.Time {
	return t.On(time.Date(fired.Year(), fired.Month(), fired.Day()+1, 12, 0, 0, 0, fired.Location()))
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
