package controllers

import (
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
)

func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND status = ?", courseID, "PUBLISHED").First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	var existing courseModels.Wishlist
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Course already in wishlist!")
	}

	entry := courseModels.Wishlist{UserID: userID, CourseID: courseID}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "Course already in wishlist!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course added to wishlist!", entry)
}

func RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var entry courseModels.Wishlist
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&entry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not in wishlist!")
	}

	if err := database.Database.Db.Unscoped().Delete(&entry).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove course from wishlist!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Course removed from wishlist!", nil)
}

func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var entries []courseModels.Wishlist
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&entries).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch wishlist!")
	}

	courseIDs := make([]uint, 0, len(entries))
	for _, e := range entries {
		courseIDs = append(courseIDs, e.CourseID)
	}

	var courses []courseModels.Course
	if len(courseIDs) > 0 {
		if err := database.Database.Db.Where("id IN ? AND is_deleted = false", courseIDs).Find(&courses).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch wishlist!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Wishlist fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
