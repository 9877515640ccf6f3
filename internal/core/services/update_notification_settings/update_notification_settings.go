package updatenotificationsettings

import (
	"context"
	"fmt"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
	sr "nutritrack/internal/core/services/schedule_reminders"
)

type Input struct {
	Settings reminder.Settings
}

type Result struct {
	Settings reminder.Settings
	Armed    []reminder.Armed
}

type service struct {
	log          logging.Logger
	settingsRepo reminder.SettingsRepository
	schedule     services.Service[sr.Input, sr.Result]
}

func New(
	log logging.Logger,
	settingsRepo reminder.SettingsRepository,
	schedule services.Service[sr.Input, sr.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if settingsRepo == nil {
		panic(e.NewNilArgumentError("settingsRepo"))
	}
	if schedule == nil {
		panic(e.NewNilArgumentError("schedule"))
	}
	return &service{log: log, settingsRepo: settingsRepo, schedule: schedule}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Settings.Validate(); err != nil {
		return result, fmt.Errorf("%w: %v", e.ErrInvalidArgument, err)
	}

	if err := s.settingsRepo.Save(ctx, input.Settings); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("settings", input.Settings))
		return result, err
	}
	s.log.Info(ctx, "Notification settings saved.", logging.Entry("settings", input.Settings))

	scheduled, err := s.schedule.Run(ctx, sr.Input{Settings: c.NewOptional(input.Settings, true)})
	if err != nil {
		return result, err
	}
	return Result{Settings: input.Settings, Armed: scheduled.Armed}, nil
}
