// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decision

import "errors"

var (
	ErrUnknownStrategy   = errors.New("unknown decision strategy")
	ErrDuplicateStrategy = errors.New("decision strategy already registered")
	ErrBadParams         = errors.New("bad filter params")
	ErrBadExpression     = errors.New("bad filter expression")
	ErrUnknownRule       = errors.New("unknown filter rule")
)
