package reminder

import (
	"context"
	"errors"
	"time"

	c "nutritrack/internal/core/domain/common"

	"github.com/google/uuid"
)

var (
	ErrDeliveryAlreadyRecorded = errors.New("delivery is already recorded")
	ErrParseDeliveryStatus     = errors.New("invalid delivery status")
)

type DeliveryStatus struct {
	v string
}

var (
	DeliveryStatusUnknown = DeliveryStatus{}
	DeliveryStatusSent    = DeliveryStatus{v: "sent"}
	DeliveryStatusSkipped = DeliveryStatus{v: "skipped"}
	DeliveryStatusFailed  = DeliveryStatus{v: "failed"}
)

func (s DeliveryStatus) String() string {
	return s.v
}

func ParseDeliveryStatus(value string) (DeliveryStatus, error) {
	switch value {
	case "sent":
		return DeliveryStatusSent, nil
	case "skipped":
		return DeliveryStatusSkipped, nil
	case "failed":
		return DeliveryStatusFailed, nil
	default:
		return DeliveryStatusUnknown, ErrParseDeliveryStatus
	}
}

// Delivery is the record of one fire of a reminder.
type Delivery struct {
	ID           uuid.UUID
	Label        string
	Title        string
	Body         string
	ScheduledFor time.Time
	FiredAt      time.Time
	Status       DeliveryStatus
	Permission   string
	Error        c.Optional[string]
}

type DeliveryReadOptions struct {
	LabelEquals c.Optional[string]
	Limit       c.Optional[uint]
	Offset      uint
}

type DeliveryRepository interface {
	Create(ctx context.Context, d Delivery) (Delivery, error)
	Read(ctx context.Context, options DeliveryReadOptions) ([]Delivery, error)
}
