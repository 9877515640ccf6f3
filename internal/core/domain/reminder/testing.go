package reminder

import (
	"context"
	"sort"
	"sync"
	"time"
)

type FakeSettingsRepository struct {
	GetError  error
	SaveError error
	saved     *Settings
	SaveCount int
	lock      sync.Mutex
}

func NewFakeSettingsRepository() *FakeSettingsRepository {
	return &FakeSettingsRepository{}
}

func (r *FakeSettingsRepository) Get(ctx context.Context) (Settings, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.GetError != nil {
		return Settings{}, r.GetError
	}
	if r.saved == nil {
		return DefaultSettings(), nil
	}
	return *r.saved, nil
}

func (r *FakeSettingsRepository) Save(ctx context.Context, s Settings) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.SaveError != nil {
		return r.SaveError
	}
	r.saved = &s
	r.SaveCount++
	return nil
}

func (r *FakeSettingsRepository) Clear(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.saved = nil
	return nil
}

type FakeDeliveryRepository struct {
	CreateError error
	ReadError   error
	ReadWith    []DeliveryReadOptions
	created     []Delivery
	lock        sync.Mutex
}

func NewFakeDeliveryRepository() *FakeDeliveryRepository {
	return &FakeDeliveryRepository{}
}

func (r *FakeDeliveryRepository) Create(ctx context.Context, d Delivery) (Delivery, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.CreateError != nil {
		return d, r.CreateError
	}
	r.created = append(r.created, d)
	return d, nil
}

func (r *FakeDeliveryRepository) Read(ctx context.Context, options DeliveryReadOptions) ([]Delivery, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.ReadWith = append(r.ReadWith, options)
	deliveries := make([]Delivery, 0, len(r.created))
	for _, d := range r.created {
		if options.LabelEquals.IsPresent && d.Label != options.LabelEquals.Value {
			continue
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (r *FakeDeliveryRepository) Created() []Delivery {
	r.lock.Lock()
	defer r.lock.Unlock()
	created := make([]Delivery, len(r.created))
	copy(created, r.created)
	return created
}

type fakeHandle struct {
	label     string
	next      time.Time
	scheduler *FakeScheduler
}

func (h *fakeHandle) Label() string {
	return h.label
}

func (h *fakeHandle) NextFire() time.Time {
	return h.next
}

func (h *fakeHandle) Cancel() bool {
	return h.scheduler.Cancel(h.label)
}

// FakeScheduler records armed reminders without running any timer.
type FakeScheduler struct {
	Now            func() time.Time
	ScheduleError  error
	CancelAllCount int
	armed          map[string]Armed
	callbacks      map[string]Callback
	lock           sync.Mutex
}

func NewFakeScheduler(now func() time.Time) *FakeScheduler {
	return &FakeScheduler{
		Now:       now,
		armed:     map[string]Armed{},
		callbacks: map[string]Callback{},
	}
}

func (s *FakeScheduler) Schedule(label string, timeOfDay string, callback Callback) (Handle, error) {
	if s.ScheduleError != nil {
		return nil, s.ScheduleError
	}
	at, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	next := at.NextAfter(s.Now())
	s.armed[label] = Armed{Label: label, TimeOfDay: at, NextFire: next}
	s.callbacks[label] = callback
	return &fakeHandle{label: label, next: next, scheduler: s}, nil
}

func (s *FakeScheduler) Cancel(label string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.armed[label]
	delete(s.armed, label)
	delete(s.callbacks, label)
	return ok
}

func (s *FakeScheduler) CancelAll() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.CancelAllCount++
	s.armed = map[string]Armed{}
	s.callbacks = map[string]Callback{}
}

func (s *FakeScheduler) Armed() []Armed {
	s.lock.Lock()
	defer s.lock.Unlock()
	armed := make([]Armed, 0, len(s.armed))
	for _, a := range s.armed {
		armed = append(armed, a)
	}
	sort.Slice(armed, func(i, j int) bool { return armed[i].Label < armed[j].Label })
	return armed
}

// Fire invokes the callback registered for label, as the timer would.
func (s *FakeScheduler) Fire(ctx context.Context, label string) error {
	s.lock.Lock()
	callback, ok := s.callbacks[label]
	s.lock.Unlock()
	if !ok {
		return nil
	}
	return callback(ctx, label)
}
