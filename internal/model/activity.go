package model

import "time"

type Activity struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	WingID             uint      `gorm:"not null;index" json:"wing_id"`
	Title              string    `gorm:"type:varchar(200);not null" json:"title"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	ActivityDate       Date      `gorm:"not null;index" json:"activity_date"`
	FacultyCoordinator *string   `gorm:"type:varchar(200)" json:"faculty_coordinator"`
	ReportURL          *string   `gorm:"type:text" json:"report_url"`           // set together with ReportCloudinaryID
	ReportCloudinaryID *string   `gorm:"type:text" json:"report_cloudinary_id"` // remote id of the report
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Activity) HasReport() bool {
	return a.ReportCloudinaryID != nil && *a.ReportCloudinaryID != ""
}
