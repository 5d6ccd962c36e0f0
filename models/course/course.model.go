package course

import "gorm.io/gorm"

// Course represents a published or draft course owned by a single instructor
type Course struct {
	gorm.Model
	InstructorID  uint    `json:"instructor_id" gorm:"index;not null"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category" gorm:"index"`
	Difficulty    string  `json:"difficulty" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Status        string  `json:"status" gorm:"default:'DRAFT'"`        // DRAFT, PUBLISHED, ARCHIVED
	EnrolledCount uint    `json:"enrolled_count" gorm:"default:0"`
	Rating        float64 `json:"rating" gorm:"default:0"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}
