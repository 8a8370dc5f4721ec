package activity

import (
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/sentry/tracing"

	"github.com/gin-gonic/gin"
)

type IDReq struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

type ListActivitiesReq struct {
	Limit int `form:"limit,default=1000" binding:"min=1,max=5000"`
}

// ListActivities returns activities of every wing, newest date first.
func ListActivities(c *gin.Context) {
	var req ListActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	activities, err := deps.Repo.ListActivities(tracing.ContextWithSpan(c), req.Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, activities)
}

func GetActivity(c *gin.Context) {
	var uri IDReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	activity, err := deps.Repo.GetActivityByID(tracing.ContextWithSpan(c), uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, activity)
}
