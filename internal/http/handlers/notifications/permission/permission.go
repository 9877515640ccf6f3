package permission

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/services"
	np "nutritrack/internal/core/services/notification_permission"
	"nutritrack/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Result struct {
	Permission string `json:"permission"`
}

type GetHandler struct {
	service services.Service[np.GetInput, np.Result]
}

func NewGet(service services.Service[np.GetInput, np.Result]) *GetHandler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &GetHandler{service: service}
}

func (h *GetHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), np.GetInput{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Permission: result.Permission.String()}, http.StatusOK)
}

type RequestHandler struct {
	service services.Service[np.RequestInput, np.Result]
}

func NewRequest(service services.Service[np.RequestInput, np.Result]) *RequestHandler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &RequestHandler{service: service}
}

func (h *RequestHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), np.RequestInput{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Permission: result.Permission.String()}, http.StatusAccepted)
}

type SetHandler struct {
	service services.Service[np.SetInput, np.Result]
}

func NewSet(service services.Service[np.SetInput, np.Result]) *SetHandler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &SetHandler{service: service}
}

type Input struct {
	Permission string `json:"permission"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Permission, validation.Required, validation.In("default", "granted", "denied")),
	)
}

func (h *SetHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), np.SetInput{Permission: input.Permission})
	if err != nil {
		switch {
		case errors.Is(err, e.ErrInvalidArgument):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{Permission: result.Permission.String()}, http.StatusOK)
}
