package courseRoutes

import (
	controllers "learnhub/controllers/course"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and learner-facing routes.
// GET routes pass the auth gate without a session; everything else requires
// the identity the gate injects.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog (public reads)
	courseGroup.Get("/", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/enrollment", validators.CourseID(), controllers.CheckEnrollment)

	// Enrollment
	courseGroup.Post("/:id/enroll", validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", validators.CourseID(), controllers.UnenrollFromCourse)

	// Progress
	courseGroup.Post("/:id/modules/:moduleID/complete", validators.CourseID(), validators.ModuleID(), controllers.RecordCompletion)
	courseGroup.Get("/:id/progress", validators.CourseID(), controllers.GetProgress)

	// Wishlist
	courseGroup.Post("/:id/wishlist", validators.CourseID(), controllers.AddToWishlist)
	courseGroup.Delete("/:id/wishlist", validators.CourseID(), controllers.RemoveFromWishlist)
}
