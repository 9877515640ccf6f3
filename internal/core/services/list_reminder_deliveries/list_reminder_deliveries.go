package listreminderdeliveries

import (
	"context"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
)

const (
	DefaultLimit uint = 50
	MaxLimit     uint = 200
)

type Input struct {
	Label  c.Optional[string]
	Limit  c.Optional[uint]
	Offset uint
}

type Result struct {
	Deliveries []reminder.Delivery
}

type service struct {
	log          logging.Logger
	deliveryRepo reminder.DeliveryRepository
}

func New(log logging.Logger, deliveryRepo reminder.DeliveryRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if deliveryRepo == nil {
		panic(e.NewNilArgumentError("deliveryRepo"))
	}
	return &service{log: log, deliveryRepo: deliveryRepo}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	limit := DefaultLimit
	if input.Limit.IsPresent {
		limit = input.Limit.Value
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	deliveries, err := s.deliveryRepo.Read(ctx, reminder.DeliveryReadOptions{
		LabelEquals: input.Label,
		Limit:       c.NewOptional(limit, true),
		Offset:      input.Offset,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Deliveries: deliveries}, nil
}
