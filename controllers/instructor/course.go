package instructorController

import (
	"context"
	"log"

	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"learnhub/storage"
	instructorValidator "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// ownedCourse loads a course and enforces that the caller is the owning
// instructor. Every mutating step of the authoring flow re-checks ownership.
func ownedCourse(c *fiber.Ctx) (*courseModels.Course, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	if course.InstructorID != userID {
		return nil, middleware.ErrorResponse(c, fiber.StatusForbidden, "You do not own this course!")
	}

	return &course, nil
}

func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedCourse").(*instructorValidator.CourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	difficulty := reqData.Difficulty
	if difficulty == "" {
		difficulty = "BEGINNER"
	}

	course := courseModels.Course{
		InstructorID: userID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Difficulty:   difficulty,
		ThumbnailURL: reqData.ThumbnailURL,
		Status:       "DRAFT",
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*instructorValidator.CourseUpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Difficulty != "" {
		course.Difficulty = reqData.Difficulty
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course updated successfully!", course)
}

// PublishCourse moves a course between DRAFT, PUBLISHED and ARCHIVED
func PublishCourse(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	reqData, ok := c.Locals("validatedPublish").(*instructorValidator.PublishRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course.Status = reqData.Status
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course status!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course status updated successfully!", course)
}

// DeleteCourse soft-deletes a course and cascades to its modules,
// enrollments and wishlist entries. Object-store assets are cleaned up
// best-effort.
func DeleteCourse(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	db := database.Database.Db

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_deleted = false", course.ID).Find(&modules)

	course.IsDeleted = true
	if err := db.Save(course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	if err := db.Model(&courseModels.Module{}).Where("course_id = ?", course.ID).
		UpdateColumn("is_deleted", true).Error; err != nil {
		log.Printf("Error cascading module deletion for course %d: %v", course.ID, err)
	}
	if err := db.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Enrollment{}).Error; err != nil {
		log.Printf("Error cascading enrollment deletion for course %d: %v", course.ID, err)
	}
	if err := db.Unscoped().Where("course_id = ?", course.ID).Delete(&courseModels.Wishlist{}).Error; err != nil {
		log.Printf("Error cascading wishlist deletion for course %d: %v", course.ID, err)
	}

	cleanupAsset(course.ThumbnailURL)
	for _, module := range modules {
		cleanupAsset(module.AssetURL)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course deleted successfully!", nil)
}

// GetOwnCourses lists the caller's courses with live enrollment counts
func GetOwnCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = false", userID).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// cleanupAsset removes an object-store asset referenced by url. Failures
// are logged and swallowed; local and external URLs are skipped.
func cleanupAsset(url string) {
	key := storage.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := storage.DeleteFile(context.Background(), key); err != nil {
		log.Printf("Error deleting asset %s: %v", key, err)
	}
}
