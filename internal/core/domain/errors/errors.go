package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrPermissionDenied = errors.New("notification permission is not granted")
	ErrCallbackFailure  = errors.New("reminder callback failed")
)

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// CallbackError carries the label of the reminder whose callback failed.
type CallbackError struct {
	Label string
	Cause error
}

func NewCallbackError(label string, cause error) *CallbackError {
	return &CallbackError{Label: label, Cause: cause}
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback for reminder '%s' failed: %v", e.Label, e.Cause)
}

func (e *CallbackError) Is(target error) bool {
	return target == ErrCallbackFailure
}

func (e *CallbackError) Unwrap() error {
	return e.Cause
}
