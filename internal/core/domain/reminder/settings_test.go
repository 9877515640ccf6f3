package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidate(t *testing.T) {
	assert.Nil(t, DefaultSettings().Validate())

	invalid := DefaultSettings()
	invalid.LunchTime = "25:00"
	assert.NotNil(t, invalid.Validate())

	invalid = DefaultSettings()
	invalid.DinnerTime = ""
	assert.NotNil(t, invalid.Validate())
}

func TestSettingsReminders(t *testing.T) {
	summaryAt := MustTimeOfDay("21:00")
	cases := []struct {
		name     string
		settings Settings
		enabled  map[string]bool
	}{
		{
			name:     "globally disabled",
			settings: Settings{Enabled: false, MealReminders: true, DailySummary: true, BreakfastTime: "08:00", LunchTime: "12:00", DinnerTime: "19:00"},
			enabled:  map[string]bool{LabelBreakfast: false, LabelLunch: false, LabelDinner: false, LabelDailySummary: false},
		},
		{
			name:     "meals only",
			settings: Settings{Enabled: true, MealReminders: true, DailySummary: false, BreakfastTime: "08:00", LunchTime: "12:00", DinnerTime: "19:00"},
			enabled:  map[string]bool{LabelBreakfast: true, LabelLunch: true, LabelDinner: true, LabelDailySummary: false},
		},
		{
			name:     "summary only",
			settings: Settings{Enabled: true, MealReminders: false, DailySummary: true, BreakfastTime: "08:00", LunchTime: "12:00", DinnerTime: "19:00"},
			enabled:  map[string]bool{LabelBreakfast: false, LabelLunch: false, LabelDinner: false, LabelDailySummary: true},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			reminders, err := testcase.settings.Reminders(summaryAt)
			require.Nil(t, err)
			require.Len(t, reminders, 4)
			for _, r := range reminders {
				assert.Equal(t, testcase.enabled[r.Label], r.Enabled, r.Label)
			}
			assert.Equal(t, "08:00", reminders[0].TimeOfDay.String())
			assert.Equal(t, "12:00", reminders[1].TimeOfDay.String())
			assert.Equal(t, "19:00", reminders[2].TimeOfDay.String())
			assert.Equal(t, "21:00", reminders[3].TimeOfDay.String())
		})
	}
}

func TestSettingsRemindersInvalidTime(t *testing.T) {
	s := DefaultSettings()
	s.BreakfastTime = "8am"
	_, err := s.Reminders(MustTimeOfDay("21:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestUnmarshalSettingsKeepsDefaults(t *testing.T) {
	s, err := UnmarshalSettings([]byte(`{"enabled": true, "lunchTime": "13:15"}`))
	require.Nil(t, err)

	expected := DefaultSettings()
	expected.Enabled = true
	expected.LunchTime = "13:15"
	assert.Equal(t, expected, s)
}

func TestSettingsMarshalUsesStoredKeys(t *testing.T) {
	data, err := DefaultSettings().Marshal()
	require.Nil(t, err)
	assert.JSONEq(
		t,
		`{"enabled":false,"mealReminders":true,"dailySummary":true,"achievements":true,`+
			`"breakfastTime":"08:00","lunchTime":"12:30","dinnerTime":"19:00"}`,
		string(data),
	)
}

func TestParseDeliveryStatus(t *testing.T) {
	for _, status := range []DeliveryStatus{DeliveryStatusSent, DeliveryStatusSkipped, DeliveryStatusFailed} {
		parsed, err := ParseDeliveryStatus(status.String())
		assert.Nil(t, err)
		assert.Equal(t, status, parsed)
	}
	_, err := ParseDeliveryStatus("delivered")
	assert.ErrorIs(t, err, ErrParseDeliveryStatus)
}
