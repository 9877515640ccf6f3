package resolveperiodrange

import (
	"context"
	"time"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/period"
	"nutritrack/internal/core/services"
)

type Input struct {
	// Date is a YYYY-MM-DD calendar date. Today is used when empty.
	Date        string
	Granularity string
}

type Result struct {
	Granularity period.Granularity
	Range       period.Range
	Previous    period.Range
}

type service struct {
	log logging.Logger
	loc *time.Location
	now func() time.Time
}

func New(log logging.Logger, loc *time.Location, now func() time.Time) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if loc == nil {
		panic(e.NewNilArgumentError("loc"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, loc: loc, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	granularity, err := period.ParseGranularity(input.Granularity)
	if err != nil {
		return result, err
	}

	ref := s.now().In(s.loc)
	if input.Date != "" {
		ref, err = period.ParseDate(input.Date, s.loc)
		if err != nil {
			return result, err
		}
	}

	r, err := period.Resolve(ref, granularity)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Debug(
		ctx,
		"Period range resolved.",
		logging.Entry("granularity", granularity),
		logging.Entry("range", r.String()),
	)
	return Result{Granularity: granularity, Range: r, Previous: r.Previous()}, nil
}
