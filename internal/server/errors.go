package server

import "errors"

// errNoListeners is returned when neither the HTTP API nor the gRPC health
// endpoint has both an address and a handler.
var errNoListeners = errors.New("no listener configured: set an http or grpc address")
