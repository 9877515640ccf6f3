package reminderscheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"

	"github.com/stretchr/testify/suite"
)

var Start = time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

type fired struct {
	label string
	at    time.Time
}

type recorder struct {
	clock *FakeClock
	lock  sync.Mutex
	fired []fired
	err   error
}

func (r *recorder) callback(ctx context.Context, label string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.fired = append(r.fired, fired{label: label, at: r.clock.Now()})
	return r.err
}

func (r *recorder) Fired() []fired {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]fired(nil), r.fired...)
}

type testSuite struct {
	suite.Suite
	log      *logging.FakeLogger
	clock    *FakeClock
	state    *State
	recorder *recorder
}

func (s *testSuite) SetupTest() {
	s.log = logging.NewFakeLogger()
	s.clock = NewFakeClock(Start)
	s.state = New(s.log, s.clock)
	s.recorder = &recorder{clock: s.clock}
}

func TestReminderScheduler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestScheduleArmsNextOccurrence() {
	h, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)

	s.Require().Nil(err)
	s.Equal("breakfast", h.Label())
	s.Equal(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC), h.NextFire())
	s.Equal([]time.Time{time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)}, s.clock.Pending())

	s.clock.Advance(59 * time.Minute)
	s.Empty(s.recorder.Fired())

	s.clock.Advance(time.Minute)
	s.Equal([]fired{{"breakfast", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
}

func (s *testSuite) TestPastTimeArmsForTomorrow() {
	h, err := s.state.Schedule("breakfast", "06:30", s.recorder.callback)

	s.Require().Nil(err)
	s.Equal(time.Date(2024, 3, 16, 6, 30, 0, 0, time.UTC), h.NextFire())

	s.clock.Advance(time.Hour)
	s.Empty(s.recorder.Fired())
}

func (s *testSuite) TestCurrentMinuteArmsForTomorrow() {
	h, err := s.state.Schedule("breakfast", "07:00", s.recorder.callback)

	s.Require().Nil(err)
	s.Equal(time.Date(2024, 3, 16, 7, 0, 0, 0, time.UTC), h.NextFire())
	s.clock.Advance(0)
	s.Empty(s.recorder.Fired())
}

func (s *testSuite) TestRescheduleKeepsOneTimerPerLabel() {
	_, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)
	_, err = s.state.Schedule("breakfast", "09:00", s.recorder.callback)
	s.Require().Nil(err)

	s.Len(s.clock.Pending(), 1)
	s.Len(s.state.Armed(), 1)

	s.clock.AdvanceTo(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC))

	s.Equal([]fired{{"breakfast", time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
}

func (s *testSuite) TestFireReArmsForFollowingDay() {
	_, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))

	s.Equal([]time.Time{time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC)}, s.clock.Pending())
	armed := s.state.Armed()
	s.Require().Len(armed, 1)
	s.Equal(time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC), armed[0].NextFire)

	s.clock.AdvanceTo(time.Date(2024, 3, 18, 8, 0, 0, 0, time.UTC))

	fired := s.recorder.Fired()
	s.Require().Len(fired, 4)
	for ix, f := range fired {
		s.Equal(time.Date(2024, 3, 15+ix, 8, 0, 0, 0, time.UTC), f.at)
		if ix > 0 {
			s.Equal(24*time.Hour, f.at.Sub(fired[ix-1].at))
		}
	}
}

func (s *testSuite) TestCancelAllStopsEveryTimer() {
	for label, at := range map[string]string{"breakfast": "08:00", "lunch": "12:30", "dinner": "19:00"} {
		_, err := s.state.Schedule(label, at, s.recorder.callback)
		s.Require().Nil(err)
	}
	s.Len(s.state.Armed(), 3)

	s.state.CancelAll()
	s.clock.Advance(72 * time.Hour)

	s.Empty(s.recorder.Fired())
	s.Empty(s.state.Armed())
	s.Empty(s.clock.Pending())
}

func (s *testSuite) TestCancelAllIsIdempotent() {
	s.state.CancelAll()
	s.state.CancelAll()
	s.Empty(s.state.Armed())

	_, err := s.state.Schedule("lunch", "12:00", s.recorder.callback)
	s.Require().Nil(err)
	s.state.CancelAll()
	s.state.CancelAll()
	s.Empty(s.state.Armed())
}

func (s *testSuite) TestCancelSingleLabel() {
	_, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)
	_, err = s.state.Schedule("lunch", "12:00", s.recorder.callback)
	s.Require().Nil(err)

	s.True(s.state.Cancel("breakfast"))
	s.False(s.state.Cancel("breakfast"))
	s.clock.AdvanceTo(time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC))

	s.Equal([]fired{{"lunch", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
}

func (s *testSuite) TestStaleHandleDoesNotCancelNewTimer() {
	first, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)
	second, err := s.state.Schedule("breakfast", "09:00", s.recorder.callback)
	s.Require().Nil(err)

	s.False(first.Cancel())
	s.Len(s.state.Armed(), 1)

	s.True(second.Cancel())
	s.Empty(s.state.Armed())
}

func (s *testSuite) TestHandleSurvivesReArm() {
	h, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	s.Len(s.recorder.Fired(), 1)

	s.True(h.Cancel())
	s.clock.Advance(48 * time.Hour)
	s.Len(s.recorder.Fired(), 1)
}

func (s *testSuite) TestCallbackErrorDoesNotBreakRecurrence() {
	s.recorder.err = errors.New("permission revoked")
	_, err := s.state.Schedule("dinner", "19:00", s.recorder.callback)
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 16, 19, 0, 0, 0, time.UTC))

	s.Len(s.recorder.Fired(), 2)
	s.Len(s.state.Armed(), 1)
	s.Equal(2, s.log.CountLevel(logging.ERROR))
}

func (s *testSuite) TestCallbackPanicIsRecovered() {
	calls := 0
	_, err := s.state.Schedule("lunch", "12:00", func(ctx context.Context, label string) error {
		calls++
		panic("boom")
	})
	s.Require().Nil(err)
	_, err = s.state.Schedule("dinner", "19:00", s.recorder.callback)
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 16, 12, 0, 0, 0, time.UTC))

	s.Equal(2, calls)
	s.Equal([]fired{{"dinner", time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
	s.Len(s.state.Armed(), 2)
}

func (s *testSuite) TestCancelAllFromCallbackPreventsReArm() {
	calls := 0
	_, err := s.state.Schedule("daily-summary", "21:00", func(ctx context.Context, label string) error {
		calls++
		s.state.CancelAll()
		return nil
	})
	s.Require().Nil(err)

	s.clock.Advance(72 * time.Hour)

	s.Equal(1, calls)
	s.Empty(s.state.Armed())
	s.Empty(s.clock.Pending())
}

func (s *testSuite) TestRescheduleFromCallbackWins() {
	calls := 0
	_, err := s.state.Schedule("breakfast", "08:00", func(ctx context.Context, label string) error {
		calls++
		if calls == 1 {
			_, err := s.state.Schedule("breakfast", "10:00", s.recorder.callback)
			s.Require().Nil(err)
		}
		return nil
	})
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	s.Equal(1, calls)
	s.Equal([]fired{{"breakfast", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
	s.Len(s.clock.Pending(), 1)
}

func (s *testSuite) TestLateFireSkipsMissedDays() {
	_, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)

	// The clock jumps straight past several occurrences, e.g. after a suspend.
	s.clock.lock.Lock()
	s.clock.now = time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)
	s.clock.lock.Unlock()
	s.clock.Advance(0)

	s.Len(s.recorder.Fired(), 1)
	s.Equal([]time.Time{time.Date(2024, 3, 19, 8, 0, 0, 0, time.UTC)}, s.clock.Pending())
}

func (s *testSuite) TestLabelsFireIndependently() {
	_, err := s.state.Schedule("lunch", "12:30", s.recorder.callback)
	s.Require().Nil(err)
	_, err = s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)

	s.clock.AdvanceTo(time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC))

	s.Equal(
		[]fired{
			{"breakfast", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)},
			{"lunch", time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)},
		},
		s.recorder.Fired(),
	)
	armed := s.state.Armed()
	s.Require().Len(armed, 2)
	s.Equal("breakfast", armed[0].Label)
	s.Equal("lunch", armed[1].Label)
}

func (s *testSuite) TestScheduleInvalidArguments() {
	cases := []struct {
		label     string
		timeOfDay string
		callback  reminder.Callback
		err       error
	}{
		{"", "08:00", s.recorder.callback, reminder.ErrInvalidLabel},
		{"breakfast", "8am", s.recorder.callback, reminder.ErrInvalidTimeOfDay},
		{"breakfast", "24:00", s.recorder.callback, reminder.ErrInvalidTimeOfDay},
		{"breakfast", "08:00", nil, ErrNilCallback},
	}

	for _, testcase := range cases {
		h, err := s.state.Schedule(testcase.label, testcase.timeOfDay, testcase.callback)
		s.Nil(h)
		s.ErrorIs(err, testcase.err)
		s.ErrorIs(err, e.ErrInvalidArgument)
	}
	s.Empty(s.state.Armed())
	s.Empty(s.clock.Pending())
}

func (s *testSuite) TestIndependentStates() {
	other := New(logging.NewFakeLogger(), s.clock)
	_, err := s.state.Schedule("breakfast", "08:00", s.recorder.callback)
	s.Require().Nil(err)
	_, err = other.Schedule("breakfast", "09:00", s.recorder.callback)
	s.Require().Nil(err)

	other.CancelAll()
	s.clock.AdvanceTo(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	s.Equal([]fired{{"breakfast", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)}}, s.recorder.Fired())
}

func TestSystemClockFires(t *testing.T) {
	clock := NewSystemClock(time.UTC)
	done := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	if clock.Now().Location() != time.UTC {
		t.Fatal("unexpected location")
	}
}
