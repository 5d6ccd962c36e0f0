package controllers

import (
	"log"
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId injected by the auth gate
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found!")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND status = ?", courseID, "PUBLISHED").First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found or not published!")
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingEnrollment).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already enrolled in this course!")
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     "ACTIVE",
		Progress:   0,
		EnrolledAt: time.Now(),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		// A concurrent enroll for the same pair loses on the unique index
		return middleware.ErrorResponse(c, fiber.StatusConflict, "User already enrolled in this course!")
	}

	// Counter bump is best-effort: a failure is logged, never rolled back
	if err := database.Database.Db.Model(&courseModels.Course{}).Where("id = ?", courseID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + 1")).Error; err != nil {
		log.Printf("Error incrementing enrolled count for course %d: %v", courseID, err)
	}

	go utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, "Enrolled in course successfully!", enrollment)
}

func UnenrollFromCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Enrollment not found!")
	}

	// Hard delete so a later re-enroll starts from a clean state
	if err := database.Database.Db.Unscoped().Delete(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to unenroll from course!")
	}

	if err := database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ? AND enrolled_count > 0", courseID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count - 1")).Error; err != nil {
		log.Printf("Error decrementing enrolled count for course %d: %v", courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Unenrolled from course successfully!", nil)
}

// CheckEnrollment is a public read: anonymous or unverifiable callers get
// {enrolled:false} rather than an error
func CheckEnrollment(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
	}

	payload := middleware.VerifyJWT(middleware.SessionToken(c))
	if payload == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, "Enrollment status fetched.", fiber.Map{
			"enrolled": false,
		})
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", payload.UserID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, "Enrollment status fetched.", fiber.Map{
			"enrolled": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enrollment status fetched.", fiber.Map{
		"enrolled": true,
		"progress": enrollment.Progress,
		"status":   enrollment.Status,
	})
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	// Attach course summaries without a gorm association (enrollments are
	// hard-deleted, courses soft-deleted; the join is done by hand)
	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	courses := make(map[uint]courseModels.Course, len(courseIDs))
	if len(courseIDs) > 0 {
		var rows []courseModels.Course
		if err := database.Database.Db.Where("id IN ? AND is_deleted = false", courseIDs).Find(&rows).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
		}
		for _, row := range rows {
			courses[row.ID] = row
		}
	}

	type enrollmentWithCourse struct {
		courseModels.Enrollment
		Course *courseModels.Course `json:"course,omitempty"`
	}

	result := make([]enrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		result[i] = enrollmentWithCourse{Enrollment: e}
		if course, found := courses[e.CourseID]; found {
			result[i].Course = &course
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
	})
}
