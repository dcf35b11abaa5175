// Package server runs the HTTP transport of the file cipher service.
//
// It owns the listener lifecycle: startup, stop-signal handling and a
// bounded graceful shutdown of in-flight requests.
package server
