package activity

import (
	"anvaya-club/internal/global/middleware"
	"anvaya-club/internal/global/upload"

	"github.com/gin-gonic/gin"
)

func (m *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", ListActivities)
		activityGroup.GET("/:id", GetActivity)
	}

	adminGroup := r.Group("/admin/activities", middleware.Auth(deps.Auth))
	{
		adminGroup.POST("", middleware.BodyLimit(upload.MaxActivityBody), CreateActivity)
		adminGroup.PUT("/:id", middleware.BodyLimit(upload.MaxActivityBody), UpdateActivity)
		adminGroup.DELETE("/:id", DeleteActivity)
	}
}
