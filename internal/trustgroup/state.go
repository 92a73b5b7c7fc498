// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trustgroup

import "sync"

type completion struct {
	gen     int64
	code    int
	payload string
}

// styleState is the completion slot of one network style. op admits one
// outstanding operation at a time; mu guards the generation and channel.
type styleState struct {
	op sync.Mutex

	mu   sync.Mutex
	gen  int64
	done chan completion
}

// begin installs a fresh single-buffered channel for gen. Any completion
// tagged with an older generation is refused from now on.
func (s *styleState) begin(gen int64) <-chan completion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen = gen
	s.done = make(chan completion, 1)
	return s.done
}

// complete delivers c if it belongs to the current generation and reports
// whether it was accepted.
func (s *styleState) complete(c completion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil || c.gen != s.gen {
		return false
	}
	select {
	case s.done <- c:
	default:
		// duplicate callback for the same generation
	}
	return true
}

func (s *styleState) end(gen int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == gen {
		s.done = nil
	}
}
