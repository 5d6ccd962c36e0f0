package controllers

import (
	"encoding/json"
	"fmt"
	"testing"

	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesActiveEnrollment(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")

	resp, env := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", course.ID), authToken(t, learner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "ACTIVE", enrollment.Status)
	assert.Equal(t, uint(0), enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)

	var refreshed courseModels.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(1), refreshed.EnrolledCount)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")
	token := authToken(t, learner)
	path := fmt.Sprintf("/api/courses/%d/enroll", course.ID)

	resp, _ := doRequest(t, app, fiber.MethodPost, path, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := doRequest(t, app, fiber.MethodPost, path, token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", learner.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollRequiresPublishedCourse(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	draft := seedCourse(t, db, instructor.ID, "DRAFT")
	token := authToken(t, learner)

	resp, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", draft.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, fiber.MethodPost, "/api/courses/9999/enroll", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnenrollThenReenrollResetsState(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")
	modules := seedModules(t, db, course.ID, 2)
	token := authToken(t, learner)
	enrollPath := fmt.Sprintf("/api/courses/%d/enroll", course.ID)

	doRequest(t, app, fiber.MethodPost, enrollPath, token, nil)
	doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/courses/%d/modules/%d/complete", course.ID, modules[0].ID), token, nil)

	resp, _ := doRequest(t, app, fiber.MethodDelete, enrollPath, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var refreshed courseModels.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(0), refreshed.EnrolledCount)

	// Second unenroll has nothing to delete
	resp, _ = doRequest(t, app, fiber.MethodDelete, enrollPath, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Re-enroll starts from a clean slate, no residual progress
	resp, _ = doRequest(t, app, fiber.MethodPost, enrollPath, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", learner.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "ACTIVE", enrollment.Status)
	assert.Equal(t, uint(0), enrollment.Progress)
	assert.Empty(t, enrollment.CompletedModuleIDs)
}

func TestCheckEnrollmentAnonymous(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")

	resp, env := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/courses/%d/enrollment", course.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, false, data["enrolled"])
}

func TestCheckEnrollmentEnrolledUser(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")
	token := authToken(t, learner)

	doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", course.ID), token, nil)

	resp, env := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/courses/%d/enrollment", course.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, true, data["enrolled"])
	assert.Equal(t, "ACTIVE", data["status"])
}

func TestGetEnrollmentsIncludesCourse(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	instructor := seedUser(t, db, "teach@example.com", "INSTRUCTOR")
	learner := seedUser(t, db, "learn@example.com", "STUDENT")
	course := seedCourse(t, db, instructor.ID, "PUBLISHED")
	token := authToken(t, learner)

	doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", course.ID), token, nil)

	resp, env := doRequest(t, app, fiber.MethodGet, "/api/user/enrollments", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Enrollments []struct {
			CourseID uint                 `json:"course_id"`
			Course   *courseModels.Course `json:"course"`
		} `json:"enrollments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Enrollments, 1)
	assert.Equal(t, course.ID, data.Enrollments[0].CourseID)
	require.NotNil(t, data.Enrollments[0].Course)
	assert.Equal(t, course.Title, data.Enrollments[0].Course.Title)
}
