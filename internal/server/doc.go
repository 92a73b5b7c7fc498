// Package server runs the daemon's transport servers: the HTTP service API
// with the bus webhooks and the gRPC health service. Each server stops when
// the context given to RunServer is done.
package server
