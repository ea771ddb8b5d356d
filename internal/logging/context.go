package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for run session identifiers.
	FieldSessionID = "session_id"
	// FieldQuery is the standardized structured logging key for the playlist entry being resolved.
	FieldQuery = "query"
	// FieldStage is the standardized structured logging key for relaxation stage names.
	FieldStage = "stage"
)

type sessionKey struct{}

// ContextWithSession stores a run session identifier in the context.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFromContext extracts the run session identifier, if present.
func SessionFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id, ok := SessionFromContext(ctx); ok {
		return logger.With(slog.String(FieldSessionID, id))
	}
	return logger
}
