package period

import (
	"fmt"
	"time"

	e "nutritrack/internal/core/domain/errors"

	"github.com/golang-module/carbon/v2"
)

const DateLayout = "2006-01-02"

var ErrParseDate = fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", e.ErrInvalidArgument)

// Range is an inclusive window of calendar days. Start and End are local midnights.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve returns the trailing window of the given granularity that ends on
// the calendar day of referenceDate. The location of referenceDate is kept.
func Resolve(referenceDate time.Time, granularity Granularity) (Range, error) {
	days, err := granularity.Days()
	if err != nil {
		return Range{}, err
	}
	end := carbon.Time2Carbon(referenceDate).StartOfDay()
	start := end.SubDays(days - 1)
	return Range{Start: start.Carbon2Time(), End: end.Carbon2Time()}, nil
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return t, ErrParseDate
	}
	return t, nil
}

func (r Range) StartDate() string {
	return r.Start.Format(DateLayout)
}

func (r Range) EndDate() string {
	return r.End.Format(DateLayout)
}

// Days is the number of calendar days covered, both ends included.
func (r Range) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Contains reports whether t falls on one of the range's calendar days.
func (r Range) Contains(t time.Time) bool {
	day := t.In(r.Start.Location()).Format(DateLayout)
	return day >= r.StartDate() && day <= r.EndDate()
}

// Previous returns the window of the same length ending the day before Start.
func (r Range) Previous() Range {
	days := r.Days()
	end := carbon.Time2Carbon(r.Start).SubDay()
	return Range{
		Start: end.SubDays(days - 1).Carbon2Time(),
		End:   end.Carbon2Time(),
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.StartDate(), r.EndDate())
}
