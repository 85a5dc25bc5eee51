package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id, surfaced as "request_id"
// on every [Begin]/[Op.End] log line traced through the returned context or
// any context derived from it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom reports the request id carried by ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
