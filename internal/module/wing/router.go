package wing

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleWing) InitRouter(r *gin.RouterGroup) {
	wingGroup := r.Group("/wings")
	{
		wingGroup.GET("", ListWings)
		wingGroup.GET("/:slug", GetWing)
		wingGroup.GET("/:slug/photos", ListWingPhotos)
		wingGroup.GET("/:slug/activities", ListWingActivities)
	}
}
