// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrStreamingUnsupported is returned when the response writer cannot
	// flush, so server-sent events cannot be delivered.
	ErrStreamingUnsupported = errors.New("streaming unsupported")

	// ErrRateLimited is returned when an owner exceeds its request rate.
	ErrRateLimited = errors.New("rate limit exceeded")
)
