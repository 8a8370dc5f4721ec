package wing

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/sentry/tracing"
	"anvaya-club/internal/model"

	"github.com/gin-gonic/gin"
)

// wingActivityLimit caps GET /wings/:slug/activities.
const wingActivityLimit = 100

type SlugReq struct {
	Slug string `uri:"slug" binding:"required,max=100"`
}

type ListPhotosReq struct {
	Limit  int `form:"limit,default=100" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListWings returns every wing ordered by id.
func ListWings(c *gin.Context) {
	ctx := tracing.ContextWithSpan(c)
	wings, err := cache.Load(ctx, deps.Cache, cache.KeyWings, func() ([]model.Wing, error) {
		return deps.Repo.ListWings(ctx)
	})
	if err != nil {
		log.Error("list wings failed", "error", err)
		response.Fail(c, err)
		return
	}
	response.Success(c, wings)
}

// GetWing returns one wing with its activities and photos.
func GetWing(c *gin.Context) {
	var req SlugReq
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	wing, err := deps.Repo.GetWingWithRelations(tracing.ContextWithSpan(c), req.Slug)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, wing)
}

func ListWingPhotos(c *gin.Context) {
	var uri SlugReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}
	var req ListPhotosReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	wing, err := deps.Repo.GetWingBySlug(ctx, uri.Slug)
	if err != nil {
		response.Fail(c, err)
		return
	}
	photos, err := deps.Repo.GetPhotosByWing(ctx, wing.ID, req.Limit, req.Offset)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, photos)
}

func ListWingActivities(c *gin.Context) {
	var uri SlugReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	wing, err := deps.Repo.GetWingBySlug(ctx, uri.Slug)
	if err != nil {
		response.Fail(c, err)
		return
	}
	activities, err := deps.Repo.GetActivitiesByWing(ctx, wing.ID, wingActivityLimit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, activities)
}
