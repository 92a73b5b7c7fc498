// Package http implements the service API and the device bus webhooks.
//
// Service API calls carry the caller's owner id and answer with a
// models.Result whose code is the stable numeric code of the error, if any.
// Per-owner events are streamed as server-sent events. Request tracing,
// access logging and per-owner rate limiting are handled here before calls
// reach the service layer.
package http
