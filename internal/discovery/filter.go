// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Filter operators.
const (
	OpAnd = "AND"
	OpOr  = "OR"
)

// Predicate types.
const (
	PredicateCredible = "credible"
	PredicateRange    = "range"
)

// Credible thresholds.
const (
	CredibleOfflineOnly = 0
	CredibleOnlineOnly  = 1
	CredibleAny         = 2
)

// Predicate is one condition of a Filter.
type Predicate struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// Filter decides which found devices reach the discovery owner.
type Filter struct {
	Op         string      `json:"filter_op"`
	Predicates []Predicate `json:"filters"`
}

// DefaultFilter surfaces only devices that are not already online.
func DefaultFilter() Filter {
	return Filter{Op: OpOr, Predicates: []Predicate{{Type: PredicateCredible, Value: CredibleOfflineOnly}}}
}

// ParseFilter parses a filter expression. An empty expression yields
// DefaultFilter.
func ParseFilter(expr string) (Filter, error) {
	if strings.TrimSpace(expr) == "" {
		return DefaultFilter(), nil
	}

	var f Filter
	if err := json.Unmarshal([]byte(expr), &f); err != nil {
		return Filter{}, fmt.Errorf("%w: filter: %w", models.ErrInvalidParameter, err)
	}
	if f.Op != OpAnd && f.Op != OpOr {
		return Filter{}, fmt.Errorf("%w: filter operator %q", models.ErrInvalidParameter, f.Op)
	}
	if len(f.Predicates) == 0 {
		return Filter{}, fmt.Errorf("%w: filter has no predicates", models.ErrInvalidParameter)
	}
	for _, p := range f.Predicates {
		switch p.Type {
		case PredicateCredible:
			if p.Value < CredibleOfflineOnly || p.Value > CredibleAny {
				return Filter{}, fmt.Errorf("%w: credible value %d", models.ErrInvalidParameter, p.Value)
			}
		case PredicateRange:
			if p.Value < 0 {
				return Filter{}, fmt.Errorf("%w: range value %d", models.ErrInvalidParameter, p.Value)
			}
		default:
			return Filter{}, fmt.Errorf("%w: filter type %q", models.ErrInvalidParameter, p.Type)
		}
	}
	return f, nil
}

// Match evaluates the filter against a found device.
func (f Filter) Match(isOnline bool, rng int) bool {
	if f.Op == OpAnd {
		for _, p := range f.Predicates {
			if !p.match(isOnline, rng) {
				return false
			}
		}
		return true
	}
	for _, p := range f.Predicates {
		if p.match(isOnline, rng) {
			return true
		}
	}
	return false
}

func (p Predicate) match(isOnline bool, rng int) bool {
	switch p.Type {
	case PredicateCredible:
		switch p.Value {
		case CredibleOfflineOnly:
			return !isOnline
		case CredibleOnlineOnly:
			return isOnline
		default:
			return true
		}
	case PredicateRange:
		return rng <= p.Value
	default:
		return false
	}
}
