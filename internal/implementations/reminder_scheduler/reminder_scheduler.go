package reminderscheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"
)

var ErrNilCallback = fmt.Errorf("%w: callback must not be nil", e.ErrInvalidArgument)

type entry struct {
	label      string
	at         reminder.TimeOfDay
	callback   reminder.Callback
	next       time.Time
	timer      Timer
	generation uint64
}

// State owns the armed reminders of one scheduler instance. Every label has
// at most one live timer: arming a label always disarms its previous timer
// first, and a timer whose entry was replaced or cancelled does nothing when
// it fires.
type State struct {
	log   logging.Logger
	clock Clock

	lock       sync.Mutex
	entries    map[string]*entry
	generation uint64
}

func New(log logging.Logger, clock Clock) *State {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &State{
		log:     log,
		clock:   clock,
		entries: make(map[string]*entry),
	}
}

func (s *State) Schedule(label string, timeOfDay string, callback reminder.Callback) (reminder.Handle, error) {
	if label == "" {
		return nil, reminder.ErrInvalidLabel
	}
	if callback == nil {
		return nil, ErrNilCallback
	}
	at, err := reminder.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.disarm(label)
	s.generation++
	en := &entry{
		label:      label,
		at:         at,
		callback:   callback,
		generation: s.generation,
	}
	s.entries[label] = en
	s.arm(en, at.NextAfter(s.clock.Now()))

	s.log.Info(
		context.Background(),
		"Reminder armed.",
		logging.Entry("label", label),
		logging.Entry("timeOfDay", at.String()),
		logging.Entry("nextFire", en.next),
	)
	return &handle{state: s, label: label, generation: en.generation, next: en.next}, nil
}

func (s *State) Cancel(label string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.disarm(label)
}

func (s *State) CancelAll() {
	s.lock.Lock()
	defer s.lock.Unlock()

	count := len(s.entries)
	for label := range s.entries {
		s.disarm(label)
	}
	if count > 0 {
		s.log.Info(context.Background(), "All reminders cancelled.", logging.Entry("count", count))
	}
}

func (s *State) Armed() []reminder.Armed {
	s.lock.Lock()
	defer s.lock.Unlock()

	armed := make([]reminder.Armed, 0, len(s.entries))
	for _, en := range s.entries {
		armed = append(armed, reminder.Armed{Label: en.label, TimeOfDay: en.at, NextFire: en.next})
	}
	sort.Slice(armed, func(i, j int) bool { return armed[i].Label < armed[j].Label })
	return armed
}

// arm must be called with the lock held.
func (s *State) arm(en *entry, next time.Time) {
	en.next = next
	label, generation := en.label, en.generation
	en.timer = s.clock.AfterFunc(next.Sub(s.clock.Now()), func() {
		s.fire(label, generation)
	})
}

// disarm must be called with the lock held.
func (s *State) disarm(label string) bool {
	en, ok := s.entries[label]
	if !ok {
		return false
	}
	if en.timer != nil {
		en.timer.Stop()
	}
	delete(s.entries, label)
	return true
}

func (s *State) current(label string, generation uint64) (*entry, bool) {
	en, ok := s.entries[label]
	if !ok || en.generation != generation {
		return nil, false
	}
	return en, true
}

func (s *State) fire(label string, generation uint64) {
	s.lock.Lock()
	en, ok := s.current(label, generation)
	if !ok {
		s.lock.Unlock()
		return
	}
	scheduledFor, at, callback := en.next, en.at, en.callback
	s.lock.Unlock()

	ctx := context.Background()
	if err := invoke(ctx, label, callback); err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("label", label),
			logging.Entry("scheduledFor", scheduledFor),
		)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	// Cancelled or re-scheduled while the callback was running.
	en, ok = s.current(label, generation)
	if !ok {
		return
	}
	now := s.clock.Now()
	next := at.FollowingDay(scheduledFor)
	if !next.After(now) {
		next = at.NextAfter(now)
	}
	s.arm(en, next)
	s.log.Debug(ctx, "Reminder re-armed.", logging.Entry("label", label), logging.Entry("nextFire", next))
}

func invoke(ctx context.Context, label string, callback reminder.Callback) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = e.NewCallbackError(label, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := callback(ctx, label); err != nil {
		return e.NewCallbackError(label, err)
	}
	return nil
}

type handle struct {
	state      *State
	label      string
	generation uint64
	next       time.Time
}

func (h *handle) Label() string {
	return h.label
}

// NextFire is the instant the reminder was first armed for.
func (h *handle) NextFire() time.Time {
	return h.next
}

func (h *handle) Cancel() bool {
	h.state.lock.Lock()
	defer h.state.lock.Unlock()
	if _, ok := h.state.current(h.label, h.generation); !ok {
		return false
	}
	return h.state.disarm(h.label)
}
