// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace IDs
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-secure-routes/models"
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

// ConnectionCtxKey is the key used to store the observed
// [models.ConnectionState] of the request in the context.
var ConnectionCtxKey = contextKey("connection")

// WithConnection returns a copy of ctx carrying conn.
func WithConnection(ctx context.Context, conn models.ConnectionState) context.Context {
	return context.WithValue(ctx, ConnectionCtxKey, conn)
}

// GetConnectionFromContext retrieves the connection state from the context.
//
// Returns the connection state and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetConnectionFromContext(ctx context.Context) (models.ConnectionState, bool) {
	conn, ok := ctx.Value(ConnectionCtxKey).(models.ConnectionState)
	return conn, ok
}
