package tracing

import (
	"net/url"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
)

// form fields that authenticate a media call and must not reach Sentry
var secretFields = map[string]bool{
	"signature":  true,
	"api_key":    true,
	"api_secret": true,
}

// mediaCall describes an outbound call to the media host, e.g. an image upload.
type mediaCall struct {
	Host         string
	ResourceType string
	Action       string
}

// parseMediaCall recognizes Cloudinary REST paths: /v1_1/<cloud>/<resource_type>/<action>.
func parseMediaCall(u *url.URL) (mediaCall, bool) {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[0] != "v1_1" {
		return mediaCall{}, false
	}
	return mediaCall{Host: "cloudinary", ResourceType: parts[2], Action: parts[3]}, true
}

// redactForm copies the form for span data without credentials or file bodies.
func redactForm(form url.Values) map[string]string {
	out := make(map[string]string, len(form))
	for k := range form {
		if k == "file" {
			continue
		}
		if secretFields[k] {
			out[k] = "[redacted]"
			continue
		}
		out[k] = form.Get(k)
	}
	return out
}

// SetupRestyTracing opens a span for every media host request whose context carries a
// transaction. Spans name the media action and record the form without credentials.
func SetupRestyTracing(client *resty.Client) {
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		parent := sentry.SpanFromContext(req.Context())
		if parent == nil {
			return nil
		}

		target := sanitizeURL(req.URL)
		span := parent.StartChild("http.client")
		span.Description = req.Method + " " + target
		span.SetData("http.request.method", req.Method)
		span.SetData("url.full", target)

		if u, err := url.Parse(req.URL); err == nil {
			if call, ok := parseMediaCall(u); ok {
				span.Op = "media." + call.Action
				span.Description = call.Host + " " + call.Action + " " + call.ResourceType
				span.SetTag("media.host", call.Host)
				span.SetTag("media.action", call.Action)
				span.SetData("media.resource_type", call.ResourceType)
				if folder := req.FormData.Get("folder"); folder != "" {
					span.SetData("media.folder", folder)
				}
				if id := req.FormData.Get("public_id"); id != "" {
					span.SetData("media.public_id", id)
				}
			}
		}
		if len(req.FormData) > 0 {
			span.SetData("http.request.form", redactForm(req.FormData))
		}

		req.SetHeader("sentry-trace", span.ToSentryTrace())
		if baggage := span.ToBaggage(); baggage != "" {
			req.SetHeader("baggage", baggage)
		}
		req.SetContext(span.Context())
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		span := sentry.SpanFromContext(resp.Request.Context())
		if span == nil {
			return nil
		}
		span.SetData("http.response.status_code", resp.StatusCode())
		if resp.StatusCode() >= 400 {
			span.Status = sentry.HTTPtoSpanStatus(resp.StatusCode())
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		if req == nil {
			return
		}
		span := sentry.SpanFromContext(req.Context())
		if span == nil {
			return
		}
		span.Status = sentry.SpanStatusInternalError
		span.SetData("http.error", err.Error())
		span.Finish()
	})
}

// sanitizeURL keeps scheme, host and path. Query strings may carry signatures.
func sanitizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if rawURL == "" || err != nil {
		return "unknown"
	}
	var b strings.Builder
	if parsed.Scheme != "" {
		b.WriteString(parsed.Scheme + "://")
	}
	b.WriteString(parsed.Host)
	b.WriteString(parsed.Path)
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
