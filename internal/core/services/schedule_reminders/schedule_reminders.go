package schedulereminders

import (
	"context"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
	fr "nutritrack/internal/core/services/fire_reminder"
)

type Input struct {
	// Settings to apply. The stored settings are read when absent.
	Settings c.Optional[reminder.Settings]
}

type Result struct {
	Armed []reminder.Armed
}

type service struct {
	log            logging.Logger
	settingsRepo   reminder.SettingsRepository
	scheduler      reminder.Scheduler
	fire           services.Service[fr.Input, fr.Result]
	dailySummaryAt reminder.TimeOfDay
}

func New(
	log logging.Logger,
	settingsRepo reminder.SettingsRepository,
	scheduler reminder.Scheduler,
	fire services.Service[fr.Input, fr.Result],
	dailySummaryAt reminder.TimeOfDay,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if settingsRepo == nil {
		panic(e.NewNilArgumentError("settingsRepo"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if fire == nil {
		panic(e.NewNilArgumentError("fire"))
	}
	return &service{
		log:            log,
		settingsRepo:   settingsRepo,
		scheduler:      scheduler,
		fire:           fire,
		dailySummaryAt: dailySummaryAt,
	}
}

// Run replaces every armed reminder with the ones the settings enable.
// Running it twice with the same settings leaves the same set armed.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	settings := input.Settings.Value
	if !input.Settings.IsPresent {
		settings, err = s.settingsRepo.Get(ctx)
		if err != nil {
			logging.Error(ctx, s.log, err)
			return result, err
		}
	}

	reminders, err := settings.Reminders(s.dailySummaryAt)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("settings", settings))
		return result, err
	}

	s.scheduler.CancelAll()
	if !settings.Enabled {
		s.log.Info(ctx, "Reminders are disabled, nothing to schedule.")
		return Result{Armed: s.scheduler.Armed()}, nil
	}

	for _, r := range reminders {
		if !r.Enabled {
			continue
		}
		_, err := s.scheduler.Schedule(r.Label, r.TimeOfDay.String(), s.callback(r.TimeOfDay))
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("label", r.Label))
			return result, err
		}
	}

	result.Armed = s.scheduler.Armed()
	s.log.Info(ctx, "Reminders successfully scheduled.", logging.Entry("armedCount", len(result.Armed)))
	return result, nil
}

func (s *service) callback(at reminder.TimeOfDay) reminder.Callback {
	return func(ctx context.Context, label string) error {
		_, err := s.fire.Run(ctx, fr.Input{Label: label, TimeOfDay: at})
		return err
	}
}
