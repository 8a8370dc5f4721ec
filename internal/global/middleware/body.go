package middleware

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the raw request body before gin parses and buffers a multipart form.
// Declared lengths over the cap are refused at once; streamed bodies fail while reading.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			response.Fail(c, errs.New(errs.ErrFileUpload, "Request body too large").With("limit_bytes", limit))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
