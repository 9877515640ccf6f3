package schema

import (
	"encoding/json"
	"time"

	"nutritrack/internal/core/domain/notification"
)

const RoutingKeyReminderFired = "reminder.fired"

type ReminderFired struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ScheduledFor time.Time `json:"scheduledFor"`
	FiredAt      time.Time `json:"firedAt"`
}

func NewReminderFired(event notification.Event) ReminderFired {
	return ReminderFired{
		ID:           event.ID.String(),
		Label:        event.Label,
		Title:        event.Title,
		Body:         event.Body,
		ScheduledFor: event.ScheduledFor,
		FiredAt:      event.FiredAt,
	}
}

func (r *ReminderFired) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ReminderFired) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}
