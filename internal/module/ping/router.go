package ping

import (
	"anvaya-club/internal/global/response"

	"github.com/gin-gonic/gin"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		log.Debug("ping", "client_ip", c.ClientIP())
		response.Success(c, gin.H{
			"message": "pong",
			"version": "1.0.0",
		})
	})
}
