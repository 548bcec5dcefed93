package observability

import (
	"context"
	"log/slog"
)

const (
	attrService = "service"
	attrMode    = "mode"
)

// ServiceHandler is an slog.Handler that pre-attaches service and mode
// attributes to every record, the way TracingHandler attaches trace context
// in a server process — here there's no span to read, just a fixed
// identity for the running binary.
type ServiceHandler struct {
	inner slog.Handler
}

// NewServiceHandler wraps inner, attaching service and mode as top-level
// attributes so they survive any subsequent WithGroup call.
func NewServiceHandler(inner slog.Handler, service string, mode AppMode) *ServiceHandler {
	return &ServiceHandler{
		inner: inner.WithAttrs([]slog.Attr{
			slog.String(attrService, service),
			slog.String(attrMode, string(mode)),
		}),
	}
}

// Enabled delegates to the inner handler.
func (h *ServiceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle delegates to the inner handler.
func (h *ServiceHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.inner.Handle(ctx, record)
}

// WithAttrs returns a new ServiceHandler with additional attributes on the
// inner handler.
func (h *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ServiceHandler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup returns a new ServiceHandler with a group prefix on the inner
// handler.
func (h *ServiceHandler) WithGroup(name string) slog.Handler {
	return &ServiceHandler{inner: h.inner.WithGroup(name)}
}
