package photo

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/pictureBed"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/sentry/tracing"
	"anvaya-club/internal/global/upload"
	"anvaya-club/internal/model"
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const filesField = "files"

type UploadReq struct {
	WingID uint `form:"wing_id" binding:"required,min=1"`
}

type IDReq struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// UploadPhotos adds one or more images to a wing gallery. Every file is checked before
// the first upload, and a failure part way through removes what was already uploaded.
func UploadPhotos(c *gin.Context) {
	var req UploadReq
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		response.Fail(c, upload.FormError(err))
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, upload.FormError(err))
		return
	}
	headers := form.File[filesField]
	if len(headers) == 0 {
		response.Fail(c, errs.New(errs.ErrValidation, "At least one file is required"))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	l := logger.WithContext(log, c)

	wing, err := deps.Repo.GetWingByID(ctx, req.WingID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	files := make([]*upload.File, 0, len(headers))
	for _, fh := range headers {
		f, err := upload.Image(fh)
		if err != nil {
			response.Fail(c, err)
			return
		}
		files = append(files, f)
	}

	folder := deps.WingFolder(wing.Slug)
	photos := make([]model.Photo, 0, len(files))
	for _, f := range files {
		obj, err := deps.Media.Upload(ctx, pictureBed.UploadInput{
			Data:     f.Data,
			Filename: f.Name,
			Folder:   folder,
			Kind:     pictureBed.KindImage,
		})
		if err != nil {
			rollback(ctx, l, photos)
			response.Fail(c, err)
			return
		}
		photos = append(photos, model.Photo{WingID: wing.ID, URL: obj.URL, CloudinaryID: obj.RemoteID})
	}

	if err := deps.Repo.CreatePhotosBulk(ctx, photos); err != nil {
		rollback(ctx, l, photos)
		response.Fail(c, err)
		return
	}

	l.Info("photos uploaded", "wing", wing.Slug, "count", len(photos))
	response.Success(c, photos)
}

// DeletePhoto removes the row, then the image on the media host.
func DeletePhoto(c *gin.Context) {
	var uri IDReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	l := logger.WithContext(log, c)

	photo, err := deps.Repo.GetPhotoByID(ctx, uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	deleted, err := deps.Repo.DeletePhoto(ctx, uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !deleted {
		response.Fail(c, errs.NotFound("Photo", uri.ID))
		return
	}
	if err := deps.Media.Delete(ctx, photo.CloudinaryID, pictureBed.KindImage); err != nil {
		l.Warn("remote photo delete failed", "remote_id", photo.CloudinaryID, "error", err)
	}

	l.Info("photo deleted", "photo_id", uri.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// rollback deletes images uploaded for a batch that will not be stored.
func rollback(ctx context.Context, l *slog.Logger, photos []model.Photo) {
	for _, p := range photos {
		if err := deps.Media.Delete(ctx, p.CloudinaryID, pictureBed.KindImage); err != nil {
			l.Warn("rollback delete failed", "remote_id", p.CloudinaryID, "error", err)
		}
	}
}
