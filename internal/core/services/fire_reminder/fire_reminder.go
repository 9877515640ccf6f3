package firereminder

import (
	"context"
	"errors"
	"time"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"

	"github.com/google/uuid"
)

type Input struct {
	Label     string
	TimeOfDay reminder.TimeOfDay
}

type Result struct {
	Delivery reminder.Delivery
}

type service struct {
	log            logging.Logger
	permissionHost notification.PermissionHost
	notifier       notification.Notifier
	deliveryRepo   reminder.DeliveryRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	permissionHost notification.PermissionHost,
	notifier notification.Notifier,
	deliveryRepo reminder.DeliveryRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if permissionHost == nil {
		panic(e.NewNilArgumentError("permissionHost"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if deliveryRepo == nil {
		panic(e.NewNilArgumentError("deliveryRepo"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		permissionHost: permissionHost,
		notifier:       notifier,
		deliveryRepo:   deliveryRepo,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Label == "" {
		return result, reminder.ErrInvalidLabel
	}

	now := s.now()
	title, body := notification.Message(input.Label)
	delivery := reminder.Delivery{
		ID:           uuid.New(),
		Label:        input.Label,
		Title:        title,
		Body:         body,
		ScheduledFor: input.TimeOfDay.LatestAtOrBefore(now),
		FiredAt:      now,
	}

	permission, err := s.permissionHost.Permission(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("label", input.Label))
		delivery.Status = reminder.DeliveryStatusFailed
		delivery.Error = c.NewOptional(err.Error(), true)
		result.Delivery = s.record(ctx, delivery)
		return result, err
	}
	delivery.Permission = permission.String()

	if permission != notification.PermissionGranted {
		s.log.Warning(
			ctx,
			"Notification permission is not granted, reminder skipped.",
			logging.Entry("label", input.Label),
			logging.Entry("permission", permission),
		)
		delivery.Status = reminder.DeliveryStatusSkipped
		delivery.Error = c.NewOptional(e.ErrPermissionDenied.Error(), true)
		result.Delivery = s.record(ctx, delivery)
		return result, nil
	}

	err = s.notifier.Notify(ctx, notification.Event{
		ID:           delivery.ID,
		Label:        delivery.Label,
		Title:        delivery.Title,
		Body:         delivery.Body,
		ScheduledFor: delivery.ScheduledFor,
		FiredAt:      delivery.FiredAt,
	})
	if err != nil {
		delivery.Status = reminder.DeliveryStatusFailed
		delivery.Error = c.NewOptional(err.Error(), true)
		result.Delivery = s.record(ctx, delivery)
		return result, err
	}

	delivery.Status = reminder.DeliveryStatusSent
	result.Delivery = s.record(ctx, delivery)
	s.log.Info(
		ctx,
		"Reminder has been sent.",
		logging.Entry("label", delivery.Label),
		logging.Entry("deliveryID", delivery.ID),
	)
	return result, nil
}

// record never fails the fire: a lost history row must not turn a sent
// notification into a failed one.
func (s *service) record(ctx context.Context, d reminder.Delivery) reminder.Delivery {
	created, err := s.deliveryRepo.Create(ctx, d)
	if errors.Is(err, reminder.ErrDeliveryAlreadyRecorded) {
		s.log.Warning(
			ctx,
			"Delivery of this fire is already recorded.",
			logging.Entry("label", d.Label),
			logging.Entry("scheduledFor", d.ScheduledFor),
		)
		return d
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("delivery", d))
		return d
	}
	return created
}
