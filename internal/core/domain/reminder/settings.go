package reminder

import (
	"context"
	"encoding/json"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var timeOfDayRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Settings is the persisted notification preferences document.
type Settings struct {
	Enabled       bool   `json:"enabled"`
	MealReminders bool   `json:"mealReminders"`
	DailySummary  bool   `json:"dailySummary"`
	Achievements  bool   `json:"achievements"`
	BreakfastTime string `json:"breakfastTime"`
	LunchTime     string `json:"lunchTime"`
	DinnerTime    string `json:"dinnerTime"`
}

func DefaultSettings() Settings {
	return Settings{
		Enabled:       false,
		MealReminders: true,
		DailySummary:  true,
		Achievements:  true,
		BreakfastTime: "08:00",
		LunchTime:     "12:30",
		DinnerTime:    "19:00",
	}
}

func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.BreakfastTime, validation.Required, validation.Match(timeOfDayRegexp)),
		validation.Field(&s.LunchTime, validation.Required, validation.Match(timeOfDayRegexp)),
		validation.Field(&s.DinnerTime, validation.Required, validation.Match(timeOfDayRegexp)),
	)
}

// Reminders derives the daily triggers described by the settings. Meal
// reminders come first, in the order of the day.
func (s Settings) Reminders(dailySummaryAt TimeOfDay) ([]Setting, error) {
	meals := []struct {
		label string
		at    string
	}{
		{LabelBreakfast, s.BreakfastTime},
		{LabelLunch, s.LunchTime},
		{LabelDinner, s.DinnerTime},
	}

	reminders := make([]Setting, 0, len(meals)+1)
	for _, meal := range meals {
		at, err := ParseTimeOfDay(meal.at)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, Setting{
			Label:     meal.label,
			TimeOfDay: at,
			Enabled:   s.Enabled && s.MealReminders,
		})
	}
	reminders = append(reminders, Setting{
		Label:     LabelDailySummary,
		TimeOfDay: dailySummaryAt,
		Enabled:   s.Enabled && s.DailySummary,
	})
	return reminders, nil
}

func (s Settings) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSettings decodes a stored document. Missing fields keep their defaults.
func UnmarshalSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

type SettingsRepository interface {
	// Get returns DefaultSettings when nothing is stored yet.
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
	Clear(ctx context.Context) error
}
