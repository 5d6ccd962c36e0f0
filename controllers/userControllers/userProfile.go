package userController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's profile with learning stats
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found!")
	}

	var activeEnrollments int64
	var completedCourses int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND status = ?", userID, "ACTIVE").Count(&activeEnrollments)
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND status = ?", userID, "COMPLETED").Count(&completedCourses)

	return middleware.JsonResponse(c, fiber.StatusOK, "Profile fetched successfully!", fiber.Map{
		"user": user,
		"stats": fiber.Map{
			"current_streak":    user.CurrentStreak,
			"learning_minutes":  user.LearningMinutes,
			"active_courses":    activeEnrollments,
			"completed_courses": completedCourses,
		},
	})
}

// UpdateProfile edits display fields only; progress counters and streaks
// are owned by the progress engine
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found!")
	}

	reqData := new(struct {
		Name         string `json:"name"`
		Bio          string `json:"bio"`
		ProfileImage string `json:"profile_image"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Profile updated successfully!", user)
}
