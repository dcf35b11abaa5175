// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, signing,
// HTTP response writing, HTTP client initialization and identifier
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key under which the session middleware stores the
// verified session identifier.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, "0190c1c4-...")
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the session identifier from the context.
//
// Returns ok == false when the value is missing, empty or of an unexpected
// type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
