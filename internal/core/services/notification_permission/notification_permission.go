// Package notificationpermission holds the use cases around the notification
// host permission: reading it, prompting for it and recording the answer.
package notificationpermission

import (
	"context"
	"fmt"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/core/services"
)

type Result struct {
	Permission notification.Permission
}

type GetInput struct{}

type getService struct {
	log  logging.Logger
	host notification.PermissionHost
}

func NewGet(log logging.Logger, host notification.PermissionHost) services.Service[GetInput, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if host == nil {
		panic(e.NewNilArgumentError("host"))
	}
	return &getService{log: log, host: host}
}

func (s *getService) Run(ctx context.Context, input GetInput) (result Result, err error) {
	p, err := s.host.Permission(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Permission: p}, nil
}

type RequestInput struct{}

type requestService struct {
	log  logging.Logger
	host notification.PermissionHost
}

func NewRequest(log logging.Logger, host notification.PermissionHost) services.Service[RequestInput, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if host == nil {
		panic(e.NewNilArgumentError("host"))
	}
	return &requestService{log: log, host: host}
}

func (s *requestService) Run(ctx context.Context, input RequestInput) (result Result, err error) {
	p, err := s.host.RequestPermission(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Permission: p}, nil
}

type SetInput struct {
	Permission string
}

type setService struct {
	log  logging.Logger
	host notification.PermissionHost
}

func NewSet(log logging.Logger, host notification.PermissionHost) services.Service[SetInput, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if host == nil {
		panic(e.NewNilArgumentError("host"))
	}
	return &setService{log: log, host: host}
}

func (s *setService) Run(ctx context.Context, input SetInput) (result Result, err error) {
	p, err := notification.ParsePermission(input.Permission)
	if err != nil {
		return result, fmt.Errorf("%w: %v", e.ErrInvalidArgument, err)
	}
	if err := s.host.SetPermission(ctx, p); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("permission", p))
		return result, err
	}
	s.log.Info(ctx, "Notification permission updated.", logging.Entry("permission", p))
	return Result{Permission: p}, nil
}
