package server

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/model"
	"anvaya-club/internal/module/admin"
	"anvaya-club/test"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Mode:        config.ModeTest,
		Prefix:      "api",
		CORSOrigins: []string{"http://localhost:5173"},
		Media:       config.Media{Driver: "cloudinary", RootFolder: "anvaya"},
	}
}

func newServer(t *testing.T) (*test.Env, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	env := test.NewEnv(t)
	return env, NewEngine(testConfig(), env.App)
}

func TestHealth(t *testing.T) {
	_, r := newServer(t)
	for _, path := range []string{"/", "/health"} {
		w := test.Get(t, r, path)
		test.NoError(t, w)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	}
	w := test.Get(t, r, "/api/ping")
	test.NoError(t, w)
}

func TestCors(t *testing.T) {
	_, r := newServer(t)

	w := test.Do(t, r, test.Request{
		Method: http.MethodOptions,
		Path:   "/api/wings",
		Header: http.Header{
			"Origin":                        {"http://localhost:5173"},
			"Access-Control-Request-Method": {"GET"},
		},
	})
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = test.Do(t, r, test.Request{
		Method: http.MethodGet,
		Path:   "/api/wings",
		Header: http.Header{"Origin": {"https://evil.example"}},
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestActivityRoundTrip(t *testing.T) {
	env, r := newServer(t)
	wing := test.CreateWing(t, env.DB, "codezero", "CodeZero")

	body, hdr := test.JSONBody(t, map[string]string{"username": test.AdminUsername, "password": test.AdminPassword})
	w := test.Do(t, r, test.Request{Method: http.MethodPost, Path: "/api/admin/login", Body: body, Header: hdr})
	test.NoError(t, w)
	token := test.Decode[admin.TokenResp](t, w).AccessToken
	require.NotEmpty(t, token)

	form, hdr := test.Multipart(t, map[string]string{
		"wing_id":       strconv.Itoa(int(wing.ID)),
		"title":         "Python Workshop",
		"description":   "Hands-on session",
		"activity_date": "2024-01-15",
	})
	w = test.Do(t, r, test.Request{Method: http.MethodPost, Path: "/api/admin/activities", Token: token, Body: form, Header: hdr})
	test.NoError(t, w)
	created := test.Decode[model.Activity](t, w)
	require.NotZero(t, created.ID)
	assert.Nil(t, created.ReportURL)

	path := fmt.Sprintf("/api/activities/%d", created.ID)
	w = test.Get(t, r, path)
	test.NoError(t, w)
	got := test.Decode[model.Activity](t, w)
	assert.Equal(t, "Python Workshop", got.Title)
	assert.Equal(t, "Hands-on session", got.Description)
	assert.Equal(t, "2024-01-15", got.ActivityDate.String())
	assert.Equal(t, wing.ID, got.WingID)

	w = test.Get(t, r, "/api/wings/codezero")
	test.NoError(t, w)
	assert.Contains(t, w.Body.String(), "Python Workshop")

	w = test.Do(t, r, test.Request{Method: http.MethodDelete, Path: fmt.Sprintf("/api/admin/activities/%d", created.ID), Token: token})
	test.NoError(t, w)
	test.ErrorEqual(t, response.ErrNotFound, test.Get(t, r, path))
}

func TestUnknownRouteIs404(t *testing.T) {
	_, r := newServer(t)
	w := test.Get(t, r, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
