package model

// Wing is a sub-organization of the club. Activities and photos point at it by WingID.
type Wing struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null;index" json:"name"`
	Slug    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"` // immutable after creation
	About   string `gorm:"type:text" json:"about"`
	Vision  string `gorm:"type:text" json:"vision"`
	Mission string `gorm:"type:text" json:"mission"`
}
