package jwt

import (
	"github.com/gin-gonic/gin"
)

const PayloadKey = "payload"

// GetAdmin returns the claims stored by the auth middleware.
func GetAdmin(c *gin.Context) (claims *Claims, exist bool) {
	payload, _ := c.Get(PayloadKey)
	claims, exist = payload.(*Claims)
	return
}
