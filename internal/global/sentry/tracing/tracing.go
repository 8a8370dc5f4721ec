// Package tracing wires Sentry performance spans into gorm, go-redis and resty.
package tracing

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled reports whether a Sentry client is bound, i.e. sentry.Init ran with a DSN.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// ContextWithSpan returns the request context, which carries the transaction started by
// the sentrygin middleware. Pass it to gorm, redis and resty calls.
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	return c.Request.Context()
}

// StartSpanFromContext starts a child span, or a detached one when ctx carries no transaction.
func StartSpanFromContext(ctx context.Context, operation, description string) *sentry.Span {
	parent := sentry.SpanFromContext(ctx)
	if parent == nil {
		return &sentry.Span{}
	}
	span := parent.StartChild(operation)
	span.Description = description
	return span
}
