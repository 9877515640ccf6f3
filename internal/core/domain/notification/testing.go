package notification

import (
	"context"
	"sync"
)

type FakePermissionHost struct {
	State        Permission
	Error        error
	RequestCount int
	lock         sync.Mutex
}

func NewFakePermissionHost(state Permission) *FakePermissionHost {
	return &FakePermissionHost{State: state}
}

func (h *FakePermissionHost) Permission(ctx context.Context) (Permission, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.Error != nil {
		return PermissionUnknown, h.Error
	}
	return h.State, nil
}

func (h *FakePermissionHost) RequestPermission(ctx context.Context) (Permission, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.Error != nil {
		return PermissionUnknown, h.Error
	}
	h.RequestCount++
	return h.State, nil
}

func (h *FakePermissionHost) SetPermission(ctx context.Context, p Permission) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	if h.Error != nil {
		return h.Error
	}
	h.State = p
	return nil
}

type FakeNotifier struct {
	Error  error
	events []Event
	lock   sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Notify(ctx context.Context, event Event) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.Error != nil {
		return n.Error
	}
	n.events = append(n.events, event)
	return nil
}

func (n *FakeNotifier) Events() []Event {
	n.lock.Lock()
	defer n.lock.Unlock()
	events := make([]Event, len(n.events))
	copy(events, n.events)
	return events
}
