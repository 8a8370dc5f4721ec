package middleware_test

import (
	"anvaya-club/internal/global/jwt"
	"anvaya-club/internal/global/middleware"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/upload"
	"anvaya-club/test"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authEngine(auth *jwt.Service) *gin.Engine {
	r := gin.New()
	r.GET("/secret", middleware.Auth(auth), func(c *gin.Context) {
		claims, ok := jwt.GetAdmin(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject})
	})
	return r
}

func TestAuth(t *testing.T) {
	env := test.NewEnv(t)
	r := authEngine(env.App.Auth)
	token := env.Token(t)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := http.Header{}
			if tc.header != "" {
				h.Set("Authorization", tc.header)
			}
			w := test.Do(t, r, test.Request{Method: http.MethodGet, Path: "/secret", Header: h})
			require.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusUnauthorized {
				require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				test.ErrorEqual(t, response.ErrAuthentication, w)
			} else {
				require.JSONEq(t, `{"sub":"admin"}`, w.Body.String())
			}
		})
	}
}

func TestAuthExpired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	env := test.NewEnv(t, jwt.WithClock(func() time.Time { return now }))
	r := authEngine(env.App.Auth)
	token := env.Token(t)

	now = issued.Add(2 * time.Hour)
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	w := test.Do(t, r, test.Request{Method: http.MethodGet, Path: "/secret", Header: h})
	test.ErrorEqual(t, response.ErrAuthentication, w)
}

func TestCors(t *testing.T) {
	newEngine := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.Cors(origins))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	get := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin", func(t *testing.T) {
		w := get(newEngine([]string{"http://localhost:5173"}), "http://localhost:5173")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})
	t.Run("wildcard echoes origin", func(t *testing.T) {
		w := get(newEngine([]string{"*"}), "https://anywhere.example")
		require.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
	t.Run("disabled", func(t *testing.T) {
		w := get(newEngine(nil), "https://anywhere.example")
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := test.Get(t, r, "/boom")
	test.ErrorEqual(t, response.ErrInternal, w)
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", middleware.BodyLimit(1024), func(c *gin.Context) {
		if _, err := c.MultipartForm(); err != nil {
			response.Fail(c, upload.FormError(err))
			return
		}
		c.Status(http.StatusOK)
	})
	send := func(body io.Reader, hdr http.Header, length int64) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		for k, v := range hdr {
			req.Header[k] = v
		}
		req.ContentLength = length
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	small, hdr := test.Multipart(t, map[string]string{"wing_id": "1"})
	data, err := io.ReadAll(small)
	require.NoError(t, err)
	require.Less(t, len(data), 1024)
	require.Equal(t, http.StatusOK, send(bytes.NewReader(data), hdr, int64(len(data))).Code)

	big, hdr := test.Multipart(t, nil, test.FormFile{Field: "files", Filename: "a.png", Data: bytes.Repeat([]byte{1}, 4096)})
	data, err = io.ReadAll(big)
	require.NoError(t, err)

	body := test.ErrorEqual(t, response.ErrFileUpload, send(bytes.NewReader(data), hdr, int64(len(data))))
	assert.Equal(t, "Request body too large", body.Detail)

	// no declared length: the cap applies while gin reads the form
	body = test.ErrorEqual(t, response.ErrFileUpload, send(bytes.NewReader(data), hdr, -1))
	assert.Equal(t, "Request body too large", body.Detail)
}
