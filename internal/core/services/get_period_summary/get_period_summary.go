package getperiodsummary

import (
	"context"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/nutrition"
	"nutritrack/internal/core/services"
	rpr "nutritrack/internal/core/services/resolve_period_range"
)

type Input struct {
	Date        string
	Granularity string
	ClientKey   string
}

func (i Input) GetRateLimitKey() string {
	return "summary::" + i.ClientKey
}

type Result struct {
	Period  rpr.Result
	Summary nutrition.Summary
}

type service struct {
	log      logging.Logger
	resolver services.Service[rpr.Input, rpr.Result]
	client   nutrition.SummaryClient
}

func New(
	log logging.Logger,
	resolver services.Service[rpr.Input, rpr.Result],
	client nutrition.SummaryClient,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if resolver == nil {
		panic(e.NewNilArgumentError("resolver"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &service{log: log, resolver: resolver, client: client}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	resolved, err := s.resolver.Run(ctx, rpr.Input{Date: input.Date, Granularity: input.Granularity})
	if err != nil {
		return result, err
	}

	summary, err := s.client.Summary(
		ctx,
		nutrition.SummaryRequest{Range: resolved.Range, Granularity: resolved.Granularity},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("range", resolved.Range.String()))
		return result, err
	}

	return Result{Period: resolved, Summary: summary}, nil
}
