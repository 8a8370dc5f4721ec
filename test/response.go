package test

import (
	"anvaya-club/internal/global/response"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type ErrorBody struct {
	Detail    string         `json:"detail"`
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details"`
}

// ErrorEqual checks status and error_code and returns the decoded body.
func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	require.Equal(t, expected.Status, w.Code, w.Body.String())
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, expected.Code, body.ErrorCode)
	return body
}

func NoError(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, 200, w.Code, w.Body.String())
}
