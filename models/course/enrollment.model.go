package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress.
// The (user_id, course_id) unique index is the only safeguard against
// concurrent duplicate enrollments; rows are hard-deleted on unenroll so
// re-enrolling starts from a clean state.
type Enrollment struct {
	gorm.Model
	UserID             uint                      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	CourseID           uint                      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_pair;not null"`
	Status             string                    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED
	Progress           uint                      `json:"progress" gorm:"default:0"`      // completion percentage (0-100)
	CompletedModuleIDs datatypes.JSONSlice[uint] `json:"completed_module_ids"`
	EnrolledAt         time.Time                 `json:"enrolled_at"`
	LastAccessed       *time.Time                `json:"last_accessed"`
	CompletedAt        *time.Time                `json:"completed_at"`
}

// Wishlist marks a course a user wants to come back to. Existence is the
// only state; the pair is unique.
type Wishlist struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_wishlist_pair;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_wishlist_pair;not null"`
}
