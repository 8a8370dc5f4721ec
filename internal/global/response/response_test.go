package response

import (
	"anvaya-club/internal/global/errs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	assert.Nil(t, Translate(nil))

	cases := []struct {
		err  error
		want *Error
	}{
		{errs.NotFound("Wing", "x"), ErrNotFound},
		{errs.New(errs.ErrValidation, "bad date"), ErrValidation},
		{errs.New(errs.ErrAuthentication, "Token has expired"), ErrAuthentication},
		{errs.New(errs.ErrFileUpload, "too big"), ErrFileUpload},
		{errs.New(errs.ErrExternalService, "Cloudinary error: down"), ErrExternalService},
		{errs.Wrap(errs.ErrStorage, errors.New("disk full"), "insert"), ErrDatabase},
		{errors.New("boom"), ErrInternal},
	}
	for _, tc := range cases {
		got := Translate(fmt.Errorf("wrapped: %w", tc.err))
		assert.Equal(t, tc.want.Status, got.Status, tc.err.Error())
		assert.Equal(t, tc.want.Code, got.Code)
		assert.ErrorIs(t, got, tc.want)
	}
}

func TestTranslateMessages(t *testing.T) {
	got := Translate(errs.New(errs.ErrFileUpload, "File too large").With("filename", "a.png"))
	assert.Equal(t, "File too large", got.Message)
	assert.Equal(t, "a.png", got.Details["filename"])

	// server side failures never leak their message
	got = Translate(errs.Wrap(errs.ErrStorage, errors.New("pq: connection refused"), "insert activity"))
	assert.Equal(t, ErrDatabase.Message, got.Message)
	assert.Contains(t, got.Origin, "connection refused")

	already := ErrValidation.WithTips("nope")
	assert.Same(t, already, Translate(already))
}

func TestWithHelpersCopy(t *testing.T) {
	e := ErrNotFound.WithTips("gone").WithDetails(map[string]any{"id": 1})
	assert.Equal(t, "Resource not found", ErrNotFound.Message)
	assert.Nil(t, ErrNotFound.Details)
	assert.Equal(t, "gone", e.Message)
	assert.Same(t, ErrNotFound, ErrNotFound.WithOrigin(nil))

	cause := errors.New("root")
	wrapped := ErrInternal.WithOrigin(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotNil(t, wrapped.StackTrace())
	assert.EqualValues(t, http.StatusInternalServerError, wrapped.GetCode())
}

func TestFail(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/activities/1", nil)
	Fail(c, errs.NotFound("Activity", 1))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["error_code"])
	assert.Equal(t, "Activity with identifier '1' not found", body["detail"])
	assert.NotContains(t, body, "origin")

	v, ok := c.Get(ErrorContextKey)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", v.(*Error).Code)
}

func TestFailAuthenticationSetsChallenge(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/photos", nil)
	Fail(c, ErrAuthentication.WithTips("Not authenticated"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		defer Recovery(c)
		c.Next()
	})
	r.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
