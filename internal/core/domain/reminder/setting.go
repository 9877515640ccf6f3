package reminder

import (
	"fmt"

	e "nutritrack/internal/core/domain/errors"
)

var ErrInvalidLabel = fmt.Errorf("%w: reminder label must not be empty", e.ErrInvalidArgument)

const (
	LabelBreakfast    = "breakfast"
	LabelLunch        = "lunch"
	LabelDinner       = "dinner"
	LabelDailySummary = "daily-summary"
)

// Setting is one named daily trigger.
type Setting struct {
	Label     string
	TimeOfDay TimeOfDay
	Enabled   bool
}

func (s Setting) Validate() error {
	if s.Label == "" {
		return ErrInvalidLabel
	}
	return nil
}

func IsMealLabel(label string) bool {
	return label == LabelBreakfast || label == LabelLunch || label == LabelDinner
}
