package instructorController

import (
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	instructorValidator "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// CreateModule adds a module to an owned course. When no order index is
// given the module goes to the end of the course.
func CreateModule(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	reqData, ok := c.Locals("validatedModule").(*instructorValidator.ModuleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Module{}).
			Where("course_id = ? AND is_deleted = false", course.ID).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	module := courseModels.Module{
		CourseID:   course.ID,
		Title:      reqData.Title,
		Type:       reqData.Type,
		Content:    reqData.Content,
		AssetURL:   reqData.AssetURL,
		OrderIndex: orderIndex,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Module created successfully!", module)
}

func UpdateModule(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	moduleID, ok := c.Locals("moduleID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Module ID!")
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, course.ID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*instructorValidator.ModuleUpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Type != "" {
		module.Type = reqData.Type
	}
	if reqData.Content != "" {
		module.Content = reqData.Content
	}
	if reqData.AssetURL != "" && reqData.AssetURL != module.AssetURL {
		// The previous asset is orphaned once the URL changes
		cleanupAsset(module.AssetURL)
		module.AssetURL = reqData.AssetURL
	}
	if reqData.OrderIndex > 0 {
		module.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module updated successfully!", module)
}

// DeleteModule soft-deletes a module. The object-store asset is removed
// first, best-effort: an asset failure never blocks the row deletion.
func DeleteModule(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	moduleID, ok := c.Locals("moduleID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Module ID!")
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = false", moduleID, course.ID).First(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
	}

	cleanupAsset(module.AssetURL)

	module.IsDeleted = true
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Module deleted successfully!", nil)
}

func ListModules(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	var modules []courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = false", course.ID).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}
