package period

import (
	"fmt"

	e "nutritrack/internal/core/domain/errors"
)

var ErrParseGranularity = fmt.Errorf("%w: unknown granularity", e.ErrInvalidArgument)

type Granularity struct {
	v string
}

var (
	GranularityUnknown = Granularity{}
	GranularityDay     = Granularity{v: "day"}
	GranularityWeek    = Granularity{v: "week"}
	GranularityMonth   = Granularity{v: "month"}
	GranularityYear    = Granularity{v: "year"}
)

func (g Granularity) String() string {
	return g.v
}

func ParseGranularity(value string) (Granularity, error) {
	switch value {
	case "day":
		return GranularityDay, nil
	case "week":
		return GranularityWeek, nil
	case "month":
		return GranularityMonth, nil
	case "year":
		return GranularityYear, nil
	default:
		return GranularityUnknown, ErrParseGranularity
	}
}

// Days is the length of the trailing window, in calendar days.
func (g Granularity) Days() (int, error) {
	switch g {
	case GranularityDay:
		return 1, nil
	case GranularityWeek:
		return 7, nil
	case GranularityMonth:
		return 30, nil
	case GranularityYear:
		return 365, nil
	default:
		return 0, ErrParseGranularity
	}
}

func (g Granularity) MarshalText() ([]byte, error) {
	return []byte(g.v), nil
}

func (g *Granularity) UnmarshalText(text []byte) error {
	parsed, err := ParseGranularity(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
