package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaCall(t *testing.T) {
	u, _ := url.Parse("https://api.cloudinary.com/v1_1/demo/image/destroy")
	call, ok := parseMediaCall(u)
	require.True(t, ok)
	assert.Equal(t, mediaCall{Host: "cloudinary", ResourceType: "image", Action: "destroy"}, call)

	u, _ = url.Parse("https://example.com/health")
	_, ok = parseMediaCall(u)
	assert.False(t, ok)
}

func TestRedactForm(t *testing.T) {
	form := url.Values{
		"signature": {"abc123"},
		"api_key":   {"key"},
		"folder":    {"anvaya/codezero"},
		"timestamp": {"1700000000"},
		"file":      {"raw bytes"},
	}
	assert.Equal(t, map[string]string{
		"signature": "[redacted]",
		"api_key":   "[redacted]",
		"folder":    "anvaya/codezero",
		"timestamp": "1700000000",
	}, redactForm(form))
}

func TestRestyTracingTagsMediaCalls(t *testing.T) {
	var traceHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceHeader = r.Header.Get("sentry-trace")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := resty.New()
	SetupRestyTracing(client)

	tx := sentry.StartTransaction(context.Background(), "POST /api/admin/photos")
	defer tx.Finish()

	resp, err := client.R().
		SetContext(tx.Context()).
		SetFormData(map[string]string{"folder": "anvaya/shespark", "signature": "secret-sig", "api_key": "k"}).
		Post(srv.URL + "/v1_1/demo/image/upload")
	require.NoError(t, err)

	span := sentry.SpanFromContext(resp.Request.Context())
	require.NotNil(t, span)
	require.NotSame(t, tx, span)
	assert.Equal(t, "media.upload", span.Op)
	assert.Equal(t, "cloudinary upload image", span.Description)
	assert.Equal(t, "upload", span.Tags["media.action"])
	assert.Equal(t, "anvaya/shespark", span.Data["media.folder"])
	assert.Equal(t, sentry.SpanStatusOK, span.Status)

	form, ok := span.Data["http.request.form"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "[redacted]", form["signature"])
	assert.Equal(t, "[redacted]", form["api_key"])
	assert.NotEmpty(t, traceHeader)
}

func TestRestyTracingWithoutTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("sentry-trace"))
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := resty.New()
	SetupRestyTracing(client)
	resp, err := client.R().Get(srv.URL + "/v1_1/demo/image/upload")
	require.NoError(t, err)
	assert.Nil(t, sentry.SpanFromContext(resp.Request.Context()))
}
