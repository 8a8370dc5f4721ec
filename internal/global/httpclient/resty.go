package httpclient

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/sentry/tracing"
	"time"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

func Init() {
	cfg := config.Get()
	Client = New(time.Duration(cfg.HTTPClient.TimeoutSeconds)*time.Second, cfg.Sentry.TraceHTTP)
}

// New builds the client used for media hosting calls. The timeout is the only
// timeout policy for outbound requests.
func New(timeout time.Duration, traceHTTP bool) *resty.Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "anvaya-club/1.0")

	if traceHTTP && tracing.IsEnabled() {
		tracing.SetupRestyTracing(client)
	}
	return client
}
