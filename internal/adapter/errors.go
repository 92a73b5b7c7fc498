package adapter

import "errors"

// Status errors returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrBusUnavailable is returned when the bus daemon cannot be reached.
var ErrBusUnavailable = errors.New("device bus unavailable")

// ErrStreamClosed is returned by a read on an event stream the server ended.
var ErrStreamClosed = errors.New("event stream closed")
