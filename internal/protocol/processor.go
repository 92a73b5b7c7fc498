// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol builds and parses the JSON messages of the pairing
// dialogue.
//
// A MessageProcessor belongs to exactly one pairing session. Outgoing
// messages are built from the session's request or response context and
// incoming messages mutate the response context. ReqAuth may be split into
// several slices when it carries a large application thumbnail; Parse
// reassembles them and reports [models.ErrIncomplete] until the final slice
// arrives.
//
// A MessageProcessor is not safe for concurrent use. The owning session
// serializes access.
package protocol

import (
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// CryptoAdapter describes the optional payload encryption the local side
// offers during negotiation.
type CryptoAdapter interface {
	Name() string
	Version() string
}

// MessageProcessor encodes and decodes messages of one pairing session.
type MessageProcessor struct {
	request  *models.AuthRequestContext
	response *models.AuthResponseContext

	crypto    CryptoAdapter
	sliceSize int

	// reassembly of a sliced ReqAuth; nextSlice < 0 means no primary
	// message has been accepted yet
	nextSlice int
	sliceNum  int
	thumbSize int

	log *logger.Logger
}

// Option configures a MessageProcessor.
type Option func(*MessageProcessor)

// WithCryptoAdapter advertises crypto support in negotiation messages.
func WithCryptoAdapter(c CryptoAdapter) Option {
	return func(p *MessageProcessor) {
		p.crypto = c
	}
}

// WithSliceSize overrides [DefaultSliceSize]. Non-positive values are
// ignored.
func WithSliceSize(n int) Option {
	return func(p *MessageProcessor) {
		if n > 0 {
			p.sliceSize = n
		}
	}
}

// NewMessageProcessor returns a processor with empty request and response
// contexts.
func NewMessageProcessor(log *logger.Logger, opts ...Option) *MessageProcessor {
	p := &MessageProcessor{
		request:   &models.AuthRequestContext{},
		response:  &models.AuthResponseContext{},
		sliceSize: DefaultSliceSize,
		nextSlice: -1,
		log:       log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetRequestContext replaces the source-side context used by BuildAuthRequest
// and SyncGroup messages.
func (p *MessageProcessor) SetRequestContext(ctx *models.AuthRequestContext) {
	if ctx != nil {
		p.request = ctx
	}
}

// SetResponseContext replaces the context mutated by Parse.
func (p *MessageProcessor) SetResponseContext(ctx *models.AuthResponseContext) {
	if ctx != nil {
		p.response = ctx
		p.resetReassembly()
	}
}

// RequestContext returns the current request context.
func (p *MessageProcessor) RequestContext() *models.AuthRequestContext {
	return p.request
}

// ResponseContext returns the current response context.
func (p *MessageProcessor) ResponseContext() *models.AuthResponseContext {
	return p.response
}

// SliceSize returns the thumbnail chunk size in bytes.
func (p *MessageProcessor) SliceSize() int {
	return p.sliceSize
}

func (p *MessageProcessor) resetReassembly() {
	p.nextSlice = -1
	p.sliceNum = 0
	p.thumbSize = 0
}

// sliceCount returns the number of thumbnail continuation messages.
func sliceCount(thumbnailLen, sliceSize int) int {
	if thumbnailLen <= 0 {
		return 0
	}
	return (thumbnailLen + sliceSize - 1) / sliceSize
}
