package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSlipUnavailable is wrapped into a NotificationError when the email path
// has no rendered slip to attach.
var ErrSlipUnavailable = errors.New("appointment slip unavailable")

// ValidationError is a malformed or missing booking field. Nothing has been
// written when it is returned.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// PersistenceError means the appointment was not stored.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save appointment: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) StatusCode() int { return http.StatusInternalServerError }

type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render appointment slip: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

type NotificationError struct {
	Channel Channel
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to send %s confirmation: %v", e.Channel, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
