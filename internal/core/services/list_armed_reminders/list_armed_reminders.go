package listarmedreminders

import (
	"context"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
)

type Input struct{}

type Result struct {
	Armed []reminder.Armed
}

type service struct {
	scheduler reminder.Scheduler
}

func New(scheduler reminder.Scheduler) services.Service[Input, Result] {
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	return &service{scheduler: scheduler}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	return Result{Armed: s.scheduler.Armed()}, nil
}
