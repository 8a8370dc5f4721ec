package model

import "time"

type Photo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WingID       uint      `gorm:"not null;index" json:"wing_id"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	CloudinaryID string    `gorm:"type:text;not null" json:"cloudinary_id"`
	UploadedAt   time.Time `gorm:"autoCreateTime;index" json:"uploaded_at"`
}
