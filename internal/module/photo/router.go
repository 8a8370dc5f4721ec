package photo

import (
	"anvaya-club/internal/global/middleware"
	"anvaya-club/internal/global/upload"

	"github.com/gin-gonic/gin"
)

func (m *ModulePhoto) InitRouter(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin/photos", middleware.Auth(deps.Auth))
	{
		adminGroup.POST("", middleware.BodyLimit(upload.MaxPhotoBody), UploadPhotos)
		adminGroup.DELETE("/:id", DeletePhoto)
	}
}
