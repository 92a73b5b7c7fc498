// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "errors"

var (
	errNotObject      = errors.New("message is not a JSON object")
	ErrInvalidSlicing = errors.New("invalid slice number or index")
)
