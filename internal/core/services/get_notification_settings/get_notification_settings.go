package getnotificationsettings

import (
	"context"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
)

type Input struct{}

type Result struct {
	Settings reminder.Settings
}

type service struct {
	log          logging.Logger
	settingsRepo reminder.SettingsRepository
}

func New(log logging.Logger, settingsRepo reminder.SettingsRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if settingsRepo == nil {
		panic(e.NewNilArgumentError("settingsRepo"))
	}
	return &service{log: log, settingsRepo: settingsRepo}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Settings: settings}, nil
}
