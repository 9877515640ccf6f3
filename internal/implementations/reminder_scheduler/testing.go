package reminderscheduler

import (
	"sort"
	"sync"
	"time"
)

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	seq     uint64
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.lock.Lock()
	defer t.clock.lock.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// FakeClock runs timer callbacks synchronously from Advance, in the order of
// their deadlines.
type FakeClock struct {
	lock   sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the deadlines of timers that have neither fired nor been stopped.
func (c *FakeClock) Pending() []time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	pending := make([]time.Time, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.stopped {
			pending = append(pending, t.at)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Before(pending[j]) })
	return pending
}

func (c *FakeClock) Advance(d time.Duration) {
	c.AdvanceTo(c.Now().Add(d))
}

func (c *FakeClock) AdvanceTo(target time.Time) {
	for {
		c.lock.Lock()
		t := c.nextDue(target)
		if t == nil {
			if target.After(c.now) {
				c.now = target
			}
			c.lock.Unlock()
			return
		}
		t.stopped = true
		if t.at.After(c.now) {
			c.now = t.at
		}
		c.lock.Unlock()
		t.f()
	}
}

// nextDue must be called with the lock held.
func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	var due *fakeTimer
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.stopped {
			continue
		}
		live = append(live, t)
		if t.at.After(target) {
			continue
		}
		if due == nil || t.at.Before(due.at) || (t.at.Equal(due.at) && t.seq < due.seq) {
			due = t
		}
	}
	c.timers = live
	return due
}
