package uploadRoutes

import (
	uploadControllers "learnhub/controllers/uploads"
	"learnhub/middleware"
	instructorValidators "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up asset upload endpoints. Only instructors push
// binary assets; learners consume them through module URLs.
func SetupUploadRoutes(app *fiber.App) {
	group := app.Group("/api/uploads", middleware.RequireRole("INSTRUCTOR"))

	group.Post("/", uploadControllers.UploadAsset)
	group.Post("/import", instructorValidators.ImportAsset(), uploadControllers.ImportAsset)
}
