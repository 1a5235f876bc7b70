package desktopapi

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrConnectionClosed is returned for requests that cannot complete because
	// the connection was closed or the peer went away.
	ErrConnectionClosed = errors.New("desktopapi: connection closed")

	// ErrNotImplemented is returned by UnimplementedHandler. The host reports it
	// to the caller as a RequestError.
	ErrNotImplemented = errors.New("not implemented")
)

// RequestError is a failure reported by the host in the envelope's error field.
type RequestError struct {
	Kind    RequestKind
	Message string
}

func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s request failed: %s", e.Kind, e.Message)
}

// UnexpectedResponseError means the host answered with a submessage other
// than the request's response kind or an error.
type UnexpectedResponseError struct {
	Kind  RequestKind
	Got   protowire.Number
	Want  protowire.Number
	Value bool // the success flag, when Got is the success field
}

func (e *UnexpectedResponseError) Error() string {
	if e.Got == envelope.Success && e.Want == envelope.Success {
		return fmt.Sprintf("%s request: host reported success=%t", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s request: unexpected response field %d, want %d", e.Kind, e.Got, e.Want)
}

func decodeError(kind RequestKind, err error) error {
	return fmt.Errorf("decode %s request: %w", kind, err)
}

func unknownKindError(kind RequestKind) error {
	return fmt.Errorf("unknown request kind %d", int32(kind))
}
