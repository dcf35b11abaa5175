// Package http implements the HTTP transport layer of the application.
//
// It serves the browser pages, the JSON encrypt and decrypt API and the
// read-once download of a session's last result. Cross-cutting concerns such
// as sessions, request tracing, access logging, response compression and
// upload limits are handled in this package before requests are delegated
// to the service layer.
package http
