package repository

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ReportRef points at a report document held by the media service.
type ReportRef struct {
	URL      string
	RemoteID string
}

// ActivityUpdate is a partial update. A nil field is left untouched.
type ActivityUpdate struct {
	Title        *string
	Description  *string
	ActivityDate *model.Date
	// FacultyCoordinator pointing at "" clears the column.
	FacultyCoordinator *string
	// Report replaces both report columns. It wins over ClearReport.
	Report      *ReportRef
	ClearReport bool
}

func (u ActivityUpdate) columns() map[string]any {
	cols := make(map[string]any)
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.ActivityDate != nil {
		cols["activity_date"] = *u.ActivityDate
	}
	if u.FacultyCoordinator != nil {
		if *u.FacultyCoordinator == "" {
			cols["faculty_coordinator"] = nil
		} else {
			cols["faculty_coordinator"] = *u.FacultyCoordinator
		}
	}
	switch {
	case u.Report != nil:
		cols["report_url"] = u.Report.URL
		cols["report_cloudinary_id"] = u.Report.RemoteID
	case u.ClearReport:
		cols["report_url"] = nil
		cols["report_cloudinary_id"] = nil
	}
	return cols
}

func (r *Repository) GetActivitiesByWing(ctx context.Context, wingID uint, limit int) ([]model.Activity, error) {
	activities := make([]model.Activity, 0)
	err := r.conn(ctx).Where("wing_id = ?", wingID).Order(activityOrder).Limit(limit).Find(&activities).Error
	return activities, storage(err, "list wing activities")
}

func (r *Repository) ListActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	activities := make([]model.Activity, 0)
	err := r.conn(ctx).Order(activityOrder).Limit(limit).Find(&activities).Error
	return activities, storage(err, "list activities")
}

func (r *Repository) GetActivityByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.first(ctx, &activity, errs.NotFound("Activity", id), "id = ?", id); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *Repository) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return r.write(ctx, "create activity", func(tx *gorm.DB) error {
		return tx.Create(activity).Error
	})
}

// UpdateActivity writes only the supplied fields and returns the stored row.
func (r *Repository) UpdateActivity(ctx context.Context, id uint, u ActivityUpdate) (*model.Activity, error) {
	var activity model.Activity
	err := r.write(ctx, "update activity", func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Take(&activity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Activity", id)
			}
			return err
		}
		cols := u.columns()
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&model.Activity{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Take(&activity).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteActivity reports whether a row was removed. An unknown id is not an error.
func (r *Repository) DeleteActivity(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.write(ctx, "delete activity", func(tx *gorm.DB) error {
		res := tx.Delete(&model.Activity{}, id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}
