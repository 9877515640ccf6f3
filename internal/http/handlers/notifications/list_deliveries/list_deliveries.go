package listdeliveries

import (
	"fmt"
	"net/http"
	"strconv"

	c "nutritrack/internal/core/domain/common"
	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/services"
	service "nutritrack/internal/core/services/list_reminder_deliveries"
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
	Deliveries []response.Delivery `json:"deliveries"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}
	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}
	label := r.URL.Query().Get("label")

	result, err := h.service.Run(r.Context(), service.Input{
		Label:  c.NewOptional(label, label != ""),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	deliveries := make([]response.Delivery, 0, len(result.Deliveries))
	for _, d := range result.Deliveries {
		delivery := response.Delivery{}
		delivery.FromDomainType(d)
		deliveries = append(deliveries, delivery)
	}
	response.Render(rw, Result{Deliveries: deliveries}, http.StatusOK)
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if uint(l) > service.MaxLimit {
		return limit, fmt.Errorf("limit must be less than or equal to %v", service.MaxLimit)
	}
	return c.NewOptional(uint(l), true), nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}
