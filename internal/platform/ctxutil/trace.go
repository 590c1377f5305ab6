package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries the ids the trace-context middleware assigns to a
// request; the request logger reads them back when emitting the access line.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

// GetTraceData returns nil outside an HTTP request, so callers must treat the
// ids as optional.
func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}
