package getperiodsummary

import (
	"errors"
	"net"
	"net/http"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/nutrition"
	ratelimiter "nutritrack/internal/core/domain/rate_limiter"
	"nutritrack/internal/core/services"
	service "nutritrack/internal/core/services/get_period_summary"
	rpr "nutritrack/internal/http/handlers/periods/resolve_period_range"
	"nutritrack/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Period  response.Period   `json:"period"`
	Summary nutrition.Summary `json:"summary"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := rpr.Input{}
	input.FromQuery(r)
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		Date:        input.Date,
		Granularity: input.Granularity,
		ClientKey:   clientKey(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, nutrition.ErrBackendUnavailable):
			response.RenderBadGateway(rw)
		case errors.Is(err, e.ErrInvalidArgument):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	resp := Result{Summary: result.Summary}
	resp.Period.FromDomainType(result.Period.Granularity, result.Period.Range, result.Period.Previous)
	response.Render(rw, resp, http.StatusOK)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
