package instructorRoutes

import (
	instructorControllers "learnhub/controllers/instructor"
	"learnhub/middleware"
	courseValidators "learnhub/validators/course"
	instructorValidators "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
)

// SetupInstructorRoutes sets up the content authoring routes. The whole
// group is gated on the INSTRUCTOR role; per-course ownership is enforced
// in the controllers.
func SetupInstructorRoutes(app *fiber.App) {
	group := app.Group("/api/instructor", middleware.RequireRole("INSTRUCTOR"))

	group.Get("/courses", instructorControllers.GetOwnCourses)
	group.Post("/courses", instructorValidators.CreateCourse(), instructorControllers.CreateCourse)
	group.Put("/courses/:id", courseValidators.CourseID(), instructorValidators.UpdateCourse(), instructorControllers.UpdateCourse)
	group.Patch("/courses/:id/publish", courseValidators.CourseID(), instructorValidators.PublishCourse(), instructorControllers.PublishCourse)
	group.Delete("/courses/:id", courseValidators.CourseID(), instructorControllers.DeleteCourse)

	group.Get("/courses/:id/modules", courseValidators.CourseID(), instructorControllers.ListModules)
	group.Post("/courses/:id/modules", courseValidators.CourseID(), instructorValidators.CreateModule(), instructorControllers.CreateModule)
	group.Put("/courses/:id/modules/sync", courseValidators.CourseID(), instructorValidators.SyncModules(), instructorControllers.SyncModules)
	group.Put("/courses/:id/modules/:moduleID", courseValidators.CourseID(), courseValidators.ModuleID(), instructorValidators.UpdateModule(), instructorControllers.UpdateModule)
	group.Delete("/courses/:id/modules/:moduleID", courseValidators.CourseID(), courseValidators.ModuleID(), instructorControllers.DeleteModule)
}
