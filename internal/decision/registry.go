// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package decision holds the named device filter strategies applied before
// state listeners are notified. The set of strategies is fixed at build time
// and selected by name from configuration.
package decision

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
)

// Strategy names.
const (
	StrategyAttribute = "attribute"
	StrategyCEL       = "cel"
)

// Registry maps strategy names to filters.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry returns a registry holding filters. Later duplicates are
// ignored.
func NewRegistry(filters ...Filter) *Registry {
	r := &Registry{filters: make(map[string]Filter, len(filters))}
	for _, f := range filters {
		_ = r.Register(f)
	}
	return r
}

// NewDefaultRegistry registers the attribute strategy and a CEL strategy
// that knows the named rules.
func NewDefaultRegistry(rules map[string]string, log *logger.Logger) (*Registry, error) {
	celFilter, err := NewCELFilter(rules, log)
	if err != nil {
		return nil, err
	}
	return NewRegistry(NewAttributeFilter(), celFilter), nil
}

// Register adds f under f.Name().
func (r *Registry) Register(f Filter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Name()
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateStrategy, name)
	}
	r.filters[name] = f
	return nil
}

// Get returns the filter registered under name.
func (r *Registry) Get(name string) (Filter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return f, nil
}

// Names returns the registered strategy names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
