package controllers

import (
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the published catalog. Reads are open to anonymous
// users; the auth gate only protects mutating verbs on this collection.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListQuery)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = false AND status = ?", "PUBLISHED")

	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Difficulty != "" {
		db = db.Where("difficulty = ?", reqData.Difficulty)
	}
	if reqData.Search != "" {
		db = db.Where("title LIKE ?", "%"+reqData.Search+"%")
	}

	// Get total count
	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	response := fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one published course with its ordered modules
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND status = ?", courseID, "PUBLISHED").First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = false", courseID).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch course modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}
