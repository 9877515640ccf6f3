package response

import (
	"time"

	"nutritrack/internal/core/domain/reminder"
)

type Armed struct {
	Label     string    `json:"label"`
	TimeOfDay string    `json:"time_of_day"`
	NextFire  time.Time `json:"next_fire"`
}

func NewArmedList(armed []reminder.Armed) []Armed {
	result := make([]Armed, 0, len(armed))
	for _, a := range armed {
		result = append(result, Armed{Label: a.Label, TimeOfDay: a.TimeOfDay.String(), NextFire: a.NextFire})
	}
	return result
}

type Delivery struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ScheduledFor time.Time `json:"scheduled_for"`
	FiredAt      time.Time `json:"fired_at"`
	Status       string    `json:"status"`
	Permission   string    `json:"permission"`
	Error        *string   `json:"error"`
}

func (d *Delivery) FromDomainType(dd reminder.Delivery) {
	d.ID = dd.ID.String()
	d.Label = dd.Label
	d.Title = dd.Title
	d.Body = dd.Body
	d.ScheduledFor = dd.ScheduledFor
	d.FiredAt = dd.FiredAt
	d.Status = dd.Status.String()
	d.Permission = dd.Permission
	if dd.Error.IsPresent {
		d.Error = &dd.Error.Value
	}
}
