package test

import (
	"anvaya-club/internal/global/app"
	"anvaya-club/internal/global/middleware"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Module mirrors module.Module so handler tests can mount a single module.
type Module interface {
	Init(a *app.App)
	InitRouter(r *gin.RouterGroup)
}

// NewEngine mounts modules under /api the way the server does.
func NewEngine(a *app.App, modules ...Module) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	for _, m := range modules {
		m.Init(a)
		m.InitRouter(r.Group("/api"))
	}
	return r
}

type Request struct {
	Method string
	Path   string
	Token  string
	Body   io.Reader
	Header http.Header
}

func Do(t *testing.T, h http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(req.Method, req.Path, req.Body)
	for k, v := range req.Header {
		r.Header[k] = v
	}
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func Get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	return Do(t, h, Request{Method: http.MethodGet, Path: path})
}

// JSONBody encodes v and returns the body and header for a Request.
func JSONBody(t *testing.T, v any) (io.Reader, http.Header) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data), http.Header{"Content-Type": {"application/json"}}
}

type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

// Multipart encodes fields and files as multipart/form-data.
func Multipart(t *testing.T, fields map[string]string, files ...FormFile) (io.Reader, http.Header) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, http.Header{"Content-Type": {mw.FormDataContentType()}}
}

func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}
