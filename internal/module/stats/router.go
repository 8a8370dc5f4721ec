package stats

import (
	"anvaya-club/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	r.GET("/statistics/activities", ActivityStatistics)

	adminGroup := r.Group("/admin/statistics", middleware.Auth(deps.Auth))
	{
		adminGroup.GET("/activities/export", ExportActivityStatistics)
	}
}
