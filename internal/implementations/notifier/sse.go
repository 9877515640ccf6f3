package notifier

import (
	"context"
	"encoding/json"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/notification"

	"github.com/r3labs/sse/v2"
)

const (
	EventReminder          = "reminder"
	EventPermissionRequest = "permission-request"
)

type publisher interface {
	Publish(id string, event *sse.Event)
}

var _ publisher = (*sse.Server)(nil)

// SSE pushes fired reminders to the browser stream.
type SSE struct {
	server publisher
	stream string
}

func NewSSE(server *sse.Server, stream string) *SSE {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	return &SSE{server: server, stream: stream}
}

func (s *SSE) Notify(ctx context.Context, event notification.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.server.Publish(s.stream, &sse.Event{
		ID:    []byte(event.ID.String()),
		Event: []byte(EventReminder),
		Data:  data,
	})
	return nil
}

type permissionRequest struct {
	Permission string `json:"permission"`
}

// RequestPermission asks the browser to show its native permission prompt.
func (s *SSE) RequestPermission(ctx context.Context, current notification.Permission) error {
	data, err := json.Marshal(permissionRequest{Permission: current.String()})
	if err != nil {
		return err
	}
	s.server.Publish(s.stream, &sse.Event{
		Event: []byte(EventPermissionRequest),
		Data:  data,
	})
	return nil
}
