package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrParsePermission = errors.New("invalid permission")

type Permission struct {
	v string
}

var (
	PermissionUnknown = Permission{}
	PermissionDefault = Permission{v: "default"}
	PermissionGranted = Permission{v: "granted"}
	PermissionDenied  = Permission{v: "denied"}
)

func (p Permission) String() string {
	return p.v
}

func ParsePermission(value string) (Permission, error) {
	switch value {
	case "default":
		return PermissionDefault, nil
	case "granted":
		return PermissionGranted, nil
	case "denied":
		return PermissionDenied, nil
	default:
		return PermissionUnknown, ErrParsePermission
	}
}

// PermissionHost is the capability that decides whether notifications may be shown.
type PermissionHost interface {
	Permission(ctx context.Context) (Permission, error)
	// RequestPermission asks the host for permission when it is undetermined
	// and returns the state known at the moment of the call.
	RequestPermission(ctx context.Context) (Permission, error)
	SetPermission(ctx context.Context, p Permission) error
}

// Event is one fired reminder as seen by notification consumers.
type Event struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ScheduledFor time.Time `json:"scheduledFor"`
	FiredAt      time.Time `json:"firedAt"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
