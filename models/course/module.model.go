package course

import "gorm.io/gorm"

// Module represents one ordered content unit within a course
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Type       string `json:"type" gorm:"default:'TEXT'"` // VIDEO, DOCUMENT, TEXT
	Content    string `json:"content" gorm:"type:text"`   // inline content for TEXT modules
	AssetURL   string `json:"asset_url"`                  // object store URL for VIDEO/DOCUMENT modules
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
