package admin

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	// login is the only admin route without a token
	r.POST("/admin/login", Login)
}
