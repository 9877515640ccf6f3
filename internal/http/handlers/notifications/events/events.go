package events

import (
	"net/http"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/http/handlers/response"

	"github.com/r3labs/sse/v2"
)

// Handler streams fired reminders and permission prompts to the browser.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	streamID  string
}

func New(log logging.Logger, sseServer *sse.Server, streamID string) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer, streamID: streamID}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	streamID := r.URL.Query().Get("stream")
	if streamID != h.streamID {
		response.RenderError(rw, "invalid stream", http.StatusNotFound)
		return
	}

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from notification events.", logging.Entry("streamID", streamID))
	}()

	if !h.sseServer.StreamExists(streamID) {
		h.sseServer.CreateStream(streamID)
	}
	h.log.Info(r.Context(), "Subscribed to notification events.", logging.Entry("streamID", streamID))
	h.sseServer.ServeHTTP(rw, r)
}
