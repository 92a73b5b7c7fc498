// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package trustgroup turns the async trust-group subsystem into blocking
// operations.
//
// Every blocking operation belongs to a network style. A style admits one
// outstanding operation at a time. Each call is tagged with a fresh
// generation which is also the request id handed to the subsystem, so a
// callback that arrives after its caller gave up cannot complete a newer
// operation. A call that exhausts the wait budget returns
// [models.ErrTimedOut]; the subsystem may still complete it later.
package trustgroup

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	// DefaultWaitBudget bounds each blocking operation.
	DefaultWaitBudget = 2 * time.Second

	// DefaultGroupOwner is the owner written into groups this service
	// creates. Groups owned by anyone else are left alone by sync and
	// cleanup.
	DefaultGroupOwner = "go-device-keeper"
)

type pendingOp struct {
	style     models.NetworkStyle
	requestID int64
	op        models.GroupOperation

	// notify forwards a credential-style result to the ResultListener
	notify bool
}

// Connector is the blocking front of a GroupManager. Construct with
// [NewConnector]; the connector registers itself as the manager's Callback.
type Connector struct {
	manager    GroupManager
	owner      string
	localID    string
	waitBudget time.Duration

	styles [2]*styleState
	seq    atomic.Int64

	mu       sync.Mutex
	pending  map[int64]pendingOp
	listener ResultListener
	observer PairingObserver

	log *logger.Logger
}

// Option configures a Connector.
type Option func(*Connector)

// WithWaitBudget overrides [DefaultWaitBudget].
func WithWaitBudget(d time.Duration) Option {
	return func(c *Connector) {
		if d > 0 {
			c.waitBudget = d
		}
	}
}

// WithGroupOwner overrides [DefaultGroupOwner].
func WithGroupOwner(owner string) Option {
	return func(c *Connector) {
		if owner != "" {
			c.owner = owner
		}
	}
}

// WithLocalDeviceID sets the udid used as the creating device of new groups.
func WithLocalDeviceID(id string) Option {
	return func(c *Connector) {
		c.localID = id
	}
}

// NewConnector wraps manager and registers the connector as its callback.
func NewConnector(manager GroupManager, log *logger.Logger, opts ...Option) *Connector {
	c := &Connector{
		manager:    manager,
		owner:      DefaultGroupOwner,
		waitBudget: DefaultWaitBudget,
		styles:     [2]*styleState{{}, {}},
		pending:    make(map[int64]pendingOp),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	manager.RegisterCallback(c)
	return c
}

// Owner returns the group owner written into groups this service creates.
func (c *Connector) Owner() string {
	return c.owner
}

// RegisterResultListener sets the credential result listener. A nil l
// removes it.
func (c *Connector) RegisterResultListener(l ResultListener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// RegisterPairingObserver sets the observer of PIN-style group events.
func (c *Connector) RegisterPairingObserver(o PairingObserver) {
	c.mu.Lock()
	c.observer = o
	c.mu.Unlock()
}

func (c *Connector) style(s models.NetworkStyle) *styleState {
	if s == models.CredentialNetwork {
		return c.styles[1]
	}
	return c.styles[0]
}

// run issues one async call under style s and blocks until its callback
// arrives or the wait budget runs out. It cannot be cancelled mid-flight.
func (c *Connector) run(
	ctx context.Context,
	s models.NetworkStyle,
	rec pendingOp,
	call func(subsystemID int64) error,
) (completion, error) {
	st := c.style(s)
	st.op.Lock()
	defer st.op.Unlock()

	gen := c.seq.Add(1)
	done := st.begin(gen)
	defer st.end(gen)

	rec.style = s
	c.track(gen, rec)

	log := c.log.With().
		Str("style", s.String()).
		Str("op", rec.op.String()).
		Int64("request_id", rec.requestID).
		Int64("generation", gen).
		Logger()

	if err := call(gen); err != nil {
		c.untrack(gen)
		log.Err(err).Str("func", "Connector.run").Msg("group subsystem rejected the call")
		return completion{}, fmt.Errorf("%w: %s: %w", models.ErrSubsystemCallFailed, rec.op, err)
	}

	timer := time.NewTimer(c.waitBudget)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.code != models.CodeOK {
			log.Error().Str("func", "Connector.run").Int("code", res.code).Msg("group operation failed")
			return res, fmt.Errorf("%w: %s returned code %d", models.ErrSubsystemCallFailed, rec.op, res.code)
		}
		return res, nil
	case <-timer.C:
		c.untrack(gen)
		log.Warn().Str("func", "Connector.run").Dur("budget", c.waitBudget).Msg("group operation timed out")
		return completion{}, fmt.Errorf("%w: %s after %s", models.ErrTimedOut, rec.op, c.waitBudget)
	}
}

func (c *Connector) track(id int64, rec pendingOp) {
	c.mu.Lock()
	c.pending[id] = rec
	c.mu.Unlock()
}

func (c *Connector) untrack(id int64) (pendingOp, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.pending[id]
	delete(c.pending, id)
	return rec, ok
}

// OnFinish implements Callback.
func (c *Connector) OnFinish(requestID int64, op models.GroupOperation, payload string) {
	c.dispatch(requestID, op, models.CodeOK, payload)
}

// OnError implements Callback.
func (c *Connector) OnError(requestID int64, op models.GroupOperation, code int, payload string) {
	if code == models.CodeOK {
		code = models.CodeFailed
	}
	c.dispatch(requestID, op, code, payload)
}

func (c *Connector) dispatch(subsystemID int64, op models.GroupOperation, code int, payload string) {
	rec, tracked := c.untrack(subsystemID)

	c.mu.Lock()
	listener, observer := c.listener, c.observer
	c.mu.Unlock()

	if !tracked {
		// raised by the peer, or late after a timeout
		c.log.Debug().
			Str("func", "Connector.dispatch").
			Int64("request_id", subsystemID).
			Str("op", op.String()).
			Int("code", code).
			Msg("callback without a waiting operation")
		if op == models.OpMemberJoin && observer != nil {
			observer.OnMemberJoin(subsystemID, code)
		}
		return
	}

	// observers run before the waiter wakes up
	switch op {
	case models.OpGroupCreate, models.OpGroupDisband:
		if rec.style == models.CredentialNetwork {
			if rec.notify && listener != nil {
				listener.OnGroupResult(models.GroupResult{
					RequestID: rec.requestID,
					Operation: op,
					Code:      code,
					Payload:   payload,
				})
			}
		} else if op == models.OpGroupCreate && observer != nil {
			observer.OnGroupCreated(rec.requestID, code, payload)
		}
	case models.OpMemberJoin:
		if observer != nil {
			observer.OnMemberJoin(rec.requestID, code)
		}
	case models.OpMemberDelete:
		c.log.Debug().
			Str("func", "Connector.dispatch").
			Int64("request_id", rec.requestID).
			Int("code", code).
			Msg("member deleted")
	}

	c.style(rec.style).complete(completion{gen: subsystemID, code: code, payload: payload})
}
