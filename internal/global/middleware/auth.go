package middleware

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/jwt"
	"anvaya-club/internal/global/response"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth admits only requests bearing a valid admin token.
func Auth(auth *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Fail(c, errs.New(errs.ErrAuthentication, "Not authenticated"))
			return
		}

		claims, err := auth.CurrentAdmin(token)
		if err != nil {
			response.Fail(c, err)
			return
		}
		c.Set(jwt.PayloadKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
