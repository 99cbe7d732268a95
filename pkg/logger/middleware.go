package logger

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header used to echo the request ID back to the browser
const RequestIDHeader = "X-Request-ID"

// NewRequestID generates a new request ID
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a copy of ctx carrying the given request ID.
// An empty id is replaced by a freshly generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = NewRequestID()
	}
	return context.WithValue(ctx, RequestIDKey, id)
}

// WithTab returns a copy of ctx carrying the dashboard tab being activated.
func WithTab(ctx context.Context, tab string) context.Context {
	return context.WithValue(ctx, TabKey, tab)
}
