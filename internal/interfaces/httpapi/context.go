package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	callerContextKey  contextKey = "caller_id"
	callerHeader                 = "X-User-Id"
	maxCallerIDLength            = 128
)

// withCaller stores the caller id sent by the dashboard. It is informational
// only and never used for authorization.
func withCaller(ctx context.Context, r *http.Request) context.Context {
	id := strings.TrimSpace(r.Header.Get(callerHeader))
	if id == "" {
		return ctx
	}
	if len(id) > maxCallerIDLength {
		id = id[:maxCallerIDLength]
	}
	return context.WithValue(ctx, callerContextKey, id)
}

func callerFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callerContextKey).(string)
	return id, ok && id != ""
}
