package ctxutil

import "context"

type requestInfoKey struct{}

// RequestInfo carries the per-request correlation ids that the HTTP layer
// stamps onto every context.
type RequestInfo struct {
	TraceID   string
	RequestID string
}

func WithRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func RequestInfoFrom(ctx context.Context) *RequestInfo {
	if info, ok := ctx.Value(requestInfoKey{}).(*RequestInfo); ok {
		return info
	}
	return nil
}
