package reminderscheduler

import "time"

type Timer interface {
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock reports the wall clock in a fixed location.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
