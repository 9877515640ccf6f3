package listarmedreminders

import (
	"net/http"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/services"
	service "nutritrack/internal/core/services/list_armed_reminders"
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
	Reminders []response.Armed `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Reminders: response.NewArmedList(result.Armed)}, http.StatusOK)
}
