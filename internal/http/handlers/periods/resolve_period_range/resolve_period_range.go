package resolveperiodrange

import (
	"errors"
	"net/http"
	"regexp"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/services"
	service "nutritrack/internal/core/services/resolve_period_range"
	"nutritrack/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

var dateRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Date        string
	Granularity string
}

func (i *Input) FromQuery(r *http.Request) {
	i.Date = r.URL.Query().Get("date")
	i.Granularity = r.URL.Query().Get("granularity")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Date, validation.Match(dateRegexp)),
		validation.Field(&i.Granularity, validation.Required, validation.In("day", "week", "month", "year")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	input.FromQuery(r)
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Date: input.Date, Granularity: input.Granularity})
	if err != nil {
		switch {
		case errors.Is(err, e.ErrInvalidArgument):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	resp := response.Period{}
	resp.FromDomainType(result.Granularity, result.Range, result.Previous)
	response.Render(rw, resp, http.StatusOK)
}
