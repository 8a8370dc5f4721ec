package response

import (
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/sentry"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// Success writes data as the raw JSON body, which is what the website frontend expects.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Fail is the only place an error becomes an HTTP status.
func Fail(c *gin.Context, err error) {
	e := Translate(err)
	if e == nil {
		e = ErrInternal
	}

	if e.Status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if e.Status >= http.StatusInternalServerError {
		logger.WithContext(logger.New("Response"), c).Error("request failed",
			"path", c.Request.URL.Path,
			"error_code", e.Code,
			"error", fmt.Sprintf("%+v", e.Unwrap()),
		)
		sentry.CaptureException(c, e)
	}

	c.Set(ErrorContextKey, e)
	body := *e
	if !gin.IsDebugging() {
		body.Origin = ""
	}
	c.AbortWithStatusJSON(e.Status, body)
}

// Recovery must be deferred directly so recover() sees the panic.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrInternal.WithOrigin(pkgerrors.Wrap(err, "panic recovered")))
	}
}
