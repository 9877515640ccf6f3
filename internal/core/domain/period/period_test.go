package period

import (
	"testing"
	"time"

	e "nutritrack/internal/core/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDate(value, time.UTC)
	require.Nil(t, err)
	return d
}

func TestResolve(t *testing.T) {
	cases := []struct {
		date        string
		granularity Granularity
		start       string
		end         string
	}{
		{"2024-03-15", GranularityDay, "2024-03-15", "2024-03-15"},
		{"2024-03-15", GranularityWeek, "2024-03-09", "2024-03-15"},
		{"2024-03-15", GranularityMonth, "2024-02-15", "2024-03-15"},
		{"2024-03-15", GranularityYear, "2023-03-17", "2024-03-15"},
		{"2024-01-03", GranularityWeek, "2023-12-28", "2024-01-03"},
		{"2023-03-01", GranularityWeek, "2023-02-23", "2023-03-01"},
		{"2024-03-01", GranularityWeek, "2024-02-24", "2024-03-01"},
		{"2024-12-31", GranularityYear, "2024-01-02", "2024-12-31"},
	}

	for _, testcase := range cases {
		t.Run(testcase.date+" "+testcase.granularity.String(), func(t *testing.T) {
			r, err := Resolve(date(t, testcase.date), testcase.granularity)
			assert.Nil(t, err)
			assert.Equal(t, testcase.start, r.StartDate())
			assert.Equal(t, testcase.end, r.EndDate())
		})
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+4", 4*60*60)
	ref := time.Date(2024, 3, 15, 23, 59, 59, 0, loc)

	r, err := Resolve(ref, GranularityWeek)

	assert.Nil(t, err)
	assert.Equal(t, "2024-03-09", r.StartDate())
	assert.Equal(t, "2024-03-15", r.EndDate())
	assert.Equal(t, 0, r.End.Hour())
	assert.Equal(t, 0, r.Start.Minute())
	_, offset := r.End.Zone()
	assert.Equal(t, 4*60*60, offset)
}

func TestResolveIsDeterministic(t *testing.T) {
	ref := date(t, "2024-02-29")
	for _, g := range []Granularity{GranularityDay, GranularityWeek, GranularityMonth, GranularityYear} {
		first, err := Resolve(ref, g)
		assert.Nil(t, err)
		second, err := Resolve(ref, g)
		assert.Nil(t, err)
		assert.Equal(t, first.String(), second.String())
		assert.False(t, first.End.Before(first.Start))
		assert.Equal(t, "2024-02-29", first.EndDate())
	}
}

func TestResolveWindowLength(t *testing.T) {
	ref := date(t, "2024-03-31")
	cases := map[Granularity]int{
		GranularityDay:   1,
		GranularityWeek:  7,
		GranularityMonth: 30,
		GranularityYear:  365,
	}
	for g, days := range cases {
		r, err := Resolve(ref, g)
		assert.Nil(t, err)
		assert.Equal(t, days, r.Days(), g.String())
	}
}

func TestResolveUnknownGranularity(t *testing.T) {
	_, err := Resolve(date(t, "2024-03-15"), GranularityUnknown)
	assert.ErrorIs(t, err, ErrParseGranularity)
	assert.ErrorIs(t, err, e.ErrInvalidArgument)
}

func TestParseGranularity(t *testing.T) {
	valid := map[string]Granularity{
		"day":   GranularityDay,
		"week":  GranularityWeek,
		"month": GranularityMonth,
		"year":  GranularityYear,
	}
	for value, expected := range valid {
		g, err := ParseGranularity(value)
		assert.Nil(t, err)
		assert.Equal(t, expected, g)
	}

	for _, value := range []string{"", " ", "Day", "weekly", "quarter", "days"} {
		t.Run(value, func(t *testing.T) {
			g, err := ParseGranularity(value)
			assert.ErrorIs(t, err, e.ErrInvalidArgument)
			assert.Equal(t, GranularityUnknown, g)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15", time.UTC)
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	for _, value := range []string{"", "2024-3-15", "15.03.2024", "2024-02-30", "2024-03-15T00:00:00Z"} {
		_, err := ParseDate(value, time.UTC)
		assert.ErrorIs(t, err, ErrParseDate, value)
	}
}

func TestRangeContains(t *testing.T) {
	r, err := Resolve(date(t, "2024-03-15"), GranularityWeek)
	require.Nil(t, err)

	assert.True(t, r.Contains(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 8, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestRangePrevious(t *testing.T) {
	r, err := Resolve(date(t, "2024-03-15"), GranularityWeek)
	require.Nil(t, err)

	previous := r.Previous()

	assert.Equal(t, "2024-03-02", previous.StartDate())
	assert.Equal(t, "2024-03-08", previous.EndDate())
	assert.Equal(t, r.Days(), previous.Days())
}

func TestGranularityText(t *testing.T) {
	var g Granularity
	assert.Nil(t, g.UnmarshalText([]byte("month")))
	assert.Equal(t, GranularityMonth, g)

	text, err := g.MarshalText()
	assert.Nil(t, err)
	assert.Equal(t, "month", string(text))

	assert.ErrorIs(t, g.UnmarshalText([]byte("fortnight")), ErrParseGranularity)
}
