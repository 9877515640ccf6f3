package settings

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/reminder"
	"nutritrack/internal/core/services"
	gns "nutritrack/internal/core/services/get_notification_settings"
	uns "nutritrack/internal/core/services/update_notification_settings"
	"nutritrack/internal/http/handlers/response"
)

type GetHandler struct {
	service services.Service[gns.Input, gns.Result]
}

func NewGet(service services.Service[gns.Input, gns.Result]) *GetHandler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &GetHandler{service: service}
}

func (h *GetHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), gns.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, result.Settings, http.StatusOK)
}

type UpdateHandler struct {
	service services.Service[uns.Input, uns.Result]
}

func NewUpdate(service services.Service[uns.Input, uns.Result]) *UpdateHandler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &UpdateHandler{service: service}
}

// Input is the settings document. Fields missing from the request keep
// their default values.
type Input struct {
	reminder.Settings
}

func (i *Input) FromJSON(r io.Reader) error {
	i.Settings = reminder.DefaultSettings()
	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	return d.Decode(&i.Settings)
}

type Result struct {
	Settings reminder.Settings `json:"settings"`
	Armed    []response.Armed  `json:"armed"`
}

func (h *UpdateHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), uns.Input{Settings: input.Settings})
	if err != nil {
		switch {
		case errors.Is(err, e.ErrInvalidArgument):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(
		rw,
		Result{Settings: result.Settings, Armed: response.NewArmedList(result.Armed)},
		http.StatusOK,
	)
}
