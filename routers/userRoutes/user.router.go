package userRoutes

import (
	courseControllers "learnhub/controllers/course"
	userControllers "learnhub/controllers/userControllers"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/user")

	userGroup.Get("/profile", userControllers.GetProfile)
	userGroup.Put("/profile", userControllers.UpdateProfile)
	userGroup.Get("/enrollments", courseControllers.GetEnrollments)
	userGroup.Get("/wishlist", courseControllers.GetWishlist)
}
