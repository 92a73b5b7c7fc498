// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package timer provides a set of named one-shot timers.
//
// Each name holds at most one armed timer. Stopping is idempotent: stopping a
// name that already fired, was already stopped, or never existed is a no-op.
// A timer that fires after being stopped and re-armed never invokes the stale
// callback.
package timer

import (
	"sync"
	"time"
)

// Func is invoked with the timer name when it fires.
type Func func(name string)

type entry struct {
	t  *time.Timer
	id uint64
}

// Timers is a registry of named one-shot timers. The zero value is not
// usable; construct with [New].
type Timers struct {
	mu     sync.Mutex
	timers map[string]*entry
	seq    uint64
}

// New returns an empty timer set.
func New() *Timers {
	return &Timers{timers: make(map[string]*entry)}
}

// Start arms name to call fn after d. If name is already armed the call is a
// no-op and Start reports false.
func (s *Timers) Start(name string, d time.Duration, fn Func) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, armed := s.timers[name]; armed {
		return false
	}

	s.seq++
	id := s.seq
	e := &entry{id: id}
	e.t = time.AfterFunc(d, func() { s.fire(name, id, fn) })
	s.timers[name] = e

	return true
}

// Restart stops name if armed and arms it again.
func (s *Timers) Restart(name string, d time.Duration, fn Func) {
	s.Stop(name)
	s.Start(name, d, fn)
}

func (s *Timers) fire(name string, id uint64, fn Func) {
	s.mu.Lock()
	e, ok := s.timers[name]
	if !ok || e.id != id {
		// stopped, or stopped and re-armed
		s.mu.Unlock()
		return
	}
	delete(s.timers, name)
	s.mu.Unlock()

	fn(name)
}

// Stop disarms name and reports whether an armed timer was removed.
func (s *Timers) Stop(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timers[name]
	if !ok {
		return false
	}
	e.t.Stop()
	delete(s.timers, name)

	return true
}

// StopAll disarms every timer.
func (s *Timers) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, e := range s.timers {
		e.t.Stop()
		delete(s.timers, name)
	}
}

// Running reports whether name is armed.
func (s *Timers) Running(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[name]
	return ok
}

// Len returns the number of armed timers.
func (s *Timers) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}
