package instructorController

import (
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	instructorValidator "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SyncModules replaces a course's module list in one server-side operation.
// The client sends the full desired list in final order; the server diffs it
// against current state - entries without an id are created, entries with an
// id are updated in place, and existing modules missing from the list are
// removed (asset cleanup first, best-effort). The order index is assigned
// from the list position, so no two modules ever share an order value.
func SyncModules(c *fiber.Ctx) error {
	course, err := ownedCourse(c)
	if course == nil {
		return err
	}

	reqData, ok := c.Locals("validatedModuleSync").(*instructorValidator.SyncModulesRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	var existing []courseModels.Module
	if err := db.Where("course_id = ? AND is_deleted = false", course.ID).Find(&existing).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load modules!")
	}

	existingByID := make(map[uint]*courseModels.Module, len(existing))
	for i := range existing {
		existingByID[existing[i].ID] = &existing[i]
	}

	// Stale ids are rejected up front so the diff never half-applies
	for _, input := range reqData.Modules {
		if input.ID != 0 {
			if _, found := existingByID[input.ID]; !found {
				return middleware.ErrorResponse(c, fiber.StatusNotFound, "Module not found!")
			}
		}
	}

	kept := make(map[uint]bool, len(reqData.Modules))
	result := make([]courseModels.Module, 0, len(reqData.Modules))

	for position, input := range reqData.Modules {
		orderIndex := position + 1

		if input.ID == 0 {
			module := courseModels.Module{
				CourseID:   course.ID,
				Title:      input.Title,
				Type:       input.Type,
				Content:    input.Content,
				AssetURL:   input.AssetURL,
				OrderIndex: orderIndex,
			}
			if err := db.Create(&module).Error; err != nil {
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module!")
			}
			result = append(result, module)
			continue
		}

		module := existingByID[input.ID]
		kept[input.ID] = true

		changed := module.Title != input.Title ||
			module.Type != input.Type ||
			module.Content != input.Content ||
			module.AssetURL != input.AssetURL ||
			module.OrderIndex != orderIndex

		if changed {
			if input.AssetURL != module.AssetURL {
				cleanupAsset(module.AssetURL)
			}
			module.Title = input.Title
			module.Type = input.Type
			module.Content = input.Content
			module.AssetURL = input.AssetURL
			module.OrderIndex = orderIndex

			if err := db.Save(module).Error; err != nil {
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module!")
			}
		}
		result = append(result, *module)
	}

	// Existing modules absent from the desired list are removed
	for _, module := range existing {
		if kept[module.ID] {
			continue
		}
		cleanupAsset(module.AssetURL)
		if err := db.Model(&courseModels.Module{}).Where("id = ?", module.ID).
			UpdateColumn("is_deleted", true).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove module!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Modules synced successfully!", fiber.Map{
		"modules": result,
	})
}
