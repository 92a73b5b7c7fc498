// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by every control-plane component. Packages wrap these
// with %w so callers match them with [errors.Is] regardless of which layer
// produced the failure.
var (
	// ErrInvalidParameter reports bad caller input. It is never retried.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMalformedMessage reports a protocol parse failure. The pairing
	// session that received the message is aborted.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrIncomplete is a control signal, not a failure: more request slices
	// are expected before the message can be used.
	ErrIncomplete = errors.New("message incomplete, more slices expected")

	// ErrAlreadyInProgress reports an admission conflict for the same owner.
	// The caller may retry after stopping its running operation.
	ErrAlreadyInProgress = errors.New("operation already in progress")

	// ErrSubsystemCallFailed reports that a transport, trust-group or
	// attestation call returned a failure.
	ErrSubsystemCallFailed = errors.New("subsystem call failed")

	// ErrTimedOut reports that a synchronous wrapper exhausted its wait
	// budget. The state of the underlying async operation is unknown.
	ErrTimedOut = errors.New("operation timed out")

	// ErrNotFound reports a lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrBusy reports that a pairing session is already running.
	ErrBusy = errors.New("authentication business busy")

	// ErrUnsupported reports an auth type or event the service cannot handle.
	ErrUnsupported = errors.New("unsupported")

	// ErrRejected reports that the peer declined a pairing session.
	ErrRejected = errors.New("peer rejected authentication")

	// ErrPinMismatch reports a PIN that does not match the peer's
	// commitment.
	ErrPinMismatch = errors.New("pin code mismatch")
)

// Stable numeric result codes returned across the service boundary.
const (
	CodeOK                  = 0
	CodeFailed              = -20000
	CodeInvalidParameter    = -20001
	CodeMalformedMessage    = -20002
	CodeIncomplete          = -20003
	CodeAlreadyInProgress   = -20004
	CodeSubsystemCallFailed = -20005
	CodeTimedOut            = -20006
	CodeNotFound            = -20007
	CodeBusy                = -20008
	CodeUnsupported         = -20009
	CodeRejected            = -20010
	CodePinMismatch         = -20011
)

var errorCodes = []struct {
	err  error
	code int
}{
	{ErrInvalidParameter, CodeInvalidParameter},
	{ErrMalformedMessage, CodeMalformedMessage},
	{ErrIncomplete, CodeIncomplete},
	{ErrAlreadyInProgress, CodeAlreadyInProgress},
	{ErrSubsystemCallFailed, CodeSubsystemCallFailed},
	{ErrTimedOut, CodeTimedOut},
	{ErrNotFound, CodeNotFound},
	{ErrBusy, CodeBusy},
	{ErrUnsupported, CodeUnsupported},
	{ErrRejected, CodeRejected},
	{ErrPinMismatch, CodePinMismatch},
}

// CodeOf maps err to its stable numeric code. A nil error is [CodeOK];
// an error outside the taxonomy is [CodeFailed].
func CodeOf(err error) int {
	if err == nil {
		return CodeOK
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeFailed
}

// ErrorOf is the inverse of [CodeOf]. [CodeOK] maps to nil and an unknown
// code to a generic error carrying the number.
func ErrorOf(code int) error {
	if code == CodeOK {
		return nil
	}
	for _, ec := range errorCodes {
		if ec.code == code {
			return ec.err
		}
	}
	return fmt.Errorf("failed with code %d", code)
}
