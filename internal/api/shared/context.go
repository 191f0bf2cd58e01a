package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is a private key type for context values set by this package.
type ContextKey string

// TraceIDKey is the key for the trace ID in the request context.
const TraceIDKey ContextKey = "traceID"

// SetTraceID adds a freshly generated trace ID to the context and returns
// it alongside the derived context. Trace IDs correlate log lines and error
// responses for a single request.
func SetTraceID(ctx context.Context) (context.Context, string) {
	traceID := uuid.NewString()
	return context.WithValue(ctx, TraceIDKey, traceID), traceID
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
