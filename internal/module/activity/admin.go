package activity

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/logger"
	"anvaya-club/internal/global/pictureBed"
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/global/sentry/tracing"
	"anvaya-club/internal/global/upload"
	"anvaya-club/internal/model"
	"anvaya-club/internal/repository"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const reportField = "report_file"

// ActivityCreateReq is the multipart form of POST /admin/activities.
type ActivityCreateReq struct {
	WingID             uint    `form:"wing_id" binding:"required,min=1"`
	Title              string  `form:"title" binding:"required,max=200"`
	Description        string  `form:"description" binding:"required"`
	ActivityDate       string  `form:"activity_date" binding:"required"`            // YYYY-MM-DD
	FacultyCoordinator *string `form:"faculty_coordinator" binding:"omitempty,max=200"` // optional
}

// ActivityUpdateReq uses pointers so absent fields are left alone. Empty title,
// description and date are ignored as well; an empty coordinator clears it.
type ActivityUpdateReq struct {
	Title              *string `form:"title" binding:"omitempty,max=200"`
	Description        *string `form:"description"`
	ActivityDate       *string `form:"activity_date"`
	FacultyCoordinator *string `form:"faculty_coordinator" binding:"omitempty,max=200"`
	RemoveReport       bool    `form:"remove_report"`
}

// CreateActivity stores a new activity and, when attached, its PDF report.
func CreateActivity(c *gin.Context) {
	var req ActivityCreateReq
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		response.Fail(c, upload.FormError(err))
		return
	}
	date, err := parseDate(req.ActivityDate)
	if err != nil {
		response.Fail(c, err)
		return
	}

	ctx := tracing.ContextWithSpan(c)
	l := logger.WithContext(log, c)

	wing, err := deps.Repo.GetWingByID(ctx, req.WingID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	report, err := uploadReport(c, wing.Slug)
	if err != nil {
		response.Fail(c, err)
		return
	}

	activity := model.Activity{
		WingID:             wing.ID,
		Title:              req.Title,
		Description:        req.Description,
		ActivityDate:       date,
		FacultyCoordinator: optional(req.FacultyCoordinator),
	}
	if report != nil {
		activity.ReportURL = &report.URL
		activity.ReportCloudinaryID = &report.RemoteID
	}

	if err := deps.Repo.CreateActivity(ctx, &activity); err != nil {
		if report != nil {
			discard(ctx, l, report.RemoteID)
		}
		response.Fail(c, err)
		return
	}

	cache.Drop(ctx, deps.Cache, cache.PrefixStats)
	l.Info("activity created", "activity_id", activity.ID, "wing", wing.Slug, "has_report", report != nil)
	response.Success(c, activity)
}

// UpdateActivity applies a partial update. A new report replaces the old one, which is
// removed from the media host only after the row points at the new one.
func UpdateActivity(c *gin.Context) {
	var uri IDReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}
	var req ActivityUpdateReq
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		response.Fail(c, upload.FormError(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	l := logger.WithContext(log, c)

	existing, err := deps.Repo.GetActivityByID(ctx, uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var upd repository.ActivityUpdate
	if req.Title != nil && *req.Title != "" {
		upd.Title = req.Title
	}
	if req.Description != nil && *req.Description != "" {
		upd.Description = req.Description
	}
	if req.ActivityDate != nil && *req.ActivityDate != "" {
		date, err := parseDate(*req.ActivityDate)
		if err != nil {
			response.Fail(c, err)
			return
		}
		upd.ActivityDate = &date
	}
	if req.FacultyCoordinator != nil {
		coordinator := strings.TrimSpace(*req.FacultyCoordinator)
		upd.FacultyCoordinator = &coordinator
	}

	var report *pictureBed.Object
	if hasFile(c, reportField) {
		wing, err := deps.Repo.GetWingByID(ctx, existing.WingID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		if report, err = uploadReport(c, wing.Slug); err != nil {
			response.Fail(c, err)
			return
		}
		upd.Report = &repository.ReportRef{URL: report.URL, RemoteID: report.RemoteID}
	} else if req.RemoveReport {
		upd.ClearReport = true
	}

	updated, err := deps.Repo.UpdateActivity(ctx, uri.ID, upd)
	if err != nil {
		if report != nil {
			discard(ctx, l, report.RemoteID)
		}
		response.Fail(c, err)
		return
	}

	if existing.HasReport() && (upd.Report != nil || upd.ClearReport) {
		discard(ctx, l, *existing.ReportCloudinaryID)
	}

	cache.Drop(ctx, deps.Cache, cache.PrefixStats)
	l.Info("activity updated", "activity_id", updated.ID, "new_report", report != nil, "report_removed", upd.ClearReport)
	response.Success(c, updated)
}

// DeleteActivity removes the row first, then its report. A failed remote delete only
// leaves an orphaned file behind.
func DeleteActivity(c *gin.Context) {
	var uri IDReq
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	ctx := tracing.ContextWithSpan(c)
	l := logger.WithContext(log, c)

	activity, err := deps.Repo.GetActivityByID(ctx, uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	deleted, err := deps.Repo.DeleteActivity(ctx, uri.ID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !deleted {
		response.Fail(c, errs.NotFound("Activity", uri.ID))
		return
	}
	if activity.HasReport() {
		discard(ctx, l, *activity.ReportCloudinaryID)
	}

	cache.Drop(ctx, deps.Cache, cache.PrefixStats)
	l.Info("activity deleted", "activity_id", uri.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

func parseDate(s string) (model.Date, error) {
	date, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, errs.Wrap(errs.ErrValidation, err, "activity_date must be a date in YYYY-MM-DD format").
			With("activity_date", s)
	}
	return date, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func hasFile(c *gin.Context, field string) bool {
	fh, err := c.FormFile(field)
	return err == nil && fh != nil && fh.Filename != ""
}

// uploadReport validates and uploads the report file if one was sent.
func uploadReport(c *gin.Context, wingSlug string) (*pictureBed.Object, error) {
	if !hasFile(c, reportField) {
		return nil, nil
	}
	fh, _ := c.FormFile(reportField)
	file, err := upload.Report(fh)
	if err != nil {
		return nil, err
	}
	return deps.Media.Upload(tracing.ContextWithSpan(c), pictureBed.UploadInput{
		Data:     file.Data,
		Filename: file.Name,
		Folder:   deps.ReportFolder(wingSlug),
		Kind:     pictureBed.KindDocument,
	})
}

// discard deletes a remote report and tolerates failure.
func discard(ctx context.Context, l *slog.Logger, remoteID string) {
	if err := deps.Media.Delete(ctx, remoteID, pictureBed.KindDocument); err != nil {
		l.Warn("remote report delete failed", "remote_id", remoteID, "error", err)
	}
}
