package controllers

import (
	"log"
	"math"
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// minutesPerModule is the fixed learning-time credit per completed module
const minutesPerModule = 15

// RecordCompletion marks one module finished for the caller's enrollment.
// Completing the same module twice is a no-op; progress never re-counts a
// unit and the streak is not re-credited.
func RecordCompletion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}
	moduleID, ok := c.Locals("moduleID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Module ID!")
	}

	db := database.Database.Db

	// Module must belong to this course
	var module courseModels.Module
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found in this course!")
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Not enrolled in this course!")
	}

	// Idempotent: already-completed modules return the current state
	for _, id := range enrollment.CompletedModuleIDs {
		if id == moduleID {
			return middleware.JsonResponse(c, fiber.StatusOK, "Module already completed.", enrollment)
		}
	}

	var totalItems int64
	db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = false", courseID).Count(&totalItems)

	completed := len(enrollment.CompletedModuleIDs)

	// A course with no content is trivially complete
	newProgress := uint(100)
	if totalItems > 0 {
		newProgress = uint(math.Round(float64(completed+1) / float64(totalItems) * 100))
		if newProgress > 100 {
			newProgress = 100
		}
	}

	nowTime := time.Now()
	enrollment.CompletedModuleIDs = append(enrollment.CompletedModuleIDs, moduleID)
	enrollment.Progress = newProgress
	enrollment.LastAccessed = &nowTime

	justCompleted := false
	if newProgress == 100 && enrollment.Status != "COMPLETED" {
		enrollment.Status = "COMPLETED"
		enrollment.CompletedAt = &nowTime
		justCompleted = true
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record completion!")
	}

	// Streak and time bookkeeping is an independent step: a failure here
	// must not roll back the enrollment update
	if err := updateLearningStats(userID); err != nil {
		log.Printf("Error updating learning stats for user %d: %v", userID, err)
	}

	if justCompleted {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err == nil {
			var course courseModels.Course
			if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
				go utils.SendCompletionEmail(user.Email, user.Name, course.Title)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module marked as completed!", enrollment)
}

// GetProgress returns the caller's progress snapshot for one course. Like
// CheckEnrollment it sits on a public read path, so the session is verified
// here rather than by the gate.
func GetProgress(c *fiber.Ctx) error {
	payload := middleware.VerifyJWT(middleware.SessionToken(c))
	if payload == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID := payload.UserID

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Not enrolled in this course!")
	}

	var totalItems int64
	database.Database.Db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = false", courseID).Count(&totalItems)

	return middleware.JsonResponse(c, fiber.StatusOK, "Progress fetched successfully!", fiber.Map{
		"progress":          enrollment.Progress,
		"status":            enrollment.Status,
		"completed_modules": len(enrollment.CompletedModuleIDs),
		"total_modules":     totalItems,
		"completed_at":      enrollment.CompletedAt,
	})
}

// updateLearningStats applies the streak rules and time credit for one
// completed module:
//   - last active yesterday: streak grows
//   - last active today: streak unchanged
//   - otherwise (including never active): streak restarts at 1
func updateLearningStats(userID uint) error {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return err
	}

	nowTime := time.Now()
	today := now.New(nowTime).BeginningOfDay()
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case user.LastActiveDate == nil:
		user.CurrentStreak = 1
	case now.New(*user.LastActiveDate).BeginningOfDay().Equal(today):
		// already active today, streak unchanged
	case now.New(*user.LastActiveDate).BeginningOfDay().Equal(yesterday):
		user.CurrentStreak++
	default:
		user.CurrentStreak = 1
	}

	user.LearningMinutes += minutesPerModule
	user.LastActiveDate = &nowTime

	return db.Save(&user).Error
}
