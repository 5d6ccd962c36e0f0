package instructorController

import (
	"encoding/json"
	"fmt"
	"testing"

	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModuleAppendsToEnd(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")
	seedModule(t, db, course.ID, "Unit One", 1)
	seedModule(t, db, course.ID, "Unit Two", 2)
	token := authToken(t, owner)
	path := fmt.Sprintf("/api/instructor/courses/%d/modules", course.ID)

	// No order index: module goes after the current last one
	resp, env := doRequest(t, app, fiber.MethodPost, path, token, fiber.Map{
		"title": "Unit Three",
		"type":  "TEXT",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var module courseModels.Module
	require.NoError(t, json.Unmarshal(env.Data, &module))
	assert.Equal(t, 3, module.OrderIndex)
	assert.Equal(t, course.ID, module.CourseID)
}

func TestCreateModuleValidatesType(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")

	resp, _ := doRequest(t, app, fiber.MethodPost, fmt.Sprintf("/api/instructor/courses/%d/modules", course.ID), authToken(t, owner), fiber.Map{
		"title": "Unit One",
		"type":  "PODCAST",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateModule(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")
	module := seedModule(t, db, course.ID, "Unit One", 1)

	resp, env := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/instructor/courses/%d/modules/%d", course.ID, module.ID),
		authToken(t, owner), fiber.Map{
			"title":   "Unit One, Revised",
			"content": "Updated body",
		})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated courseModels.Module
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Unit One, Revised", updated.Title)
	assert.Equal(t, "Updated body", updated.Content)
	assert.Equal(t, "TEXT", updated.Type)
}

func TestUpdateModuleRequiresOwnership(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	other := seedUser(t, db, "other@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")
	module := seedModule(t, db, course.ID, "Unit One", 1)

	resp, _ := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/instructor/courses/%d/modules/%d", course.ID, module.ID),
		authToken(t, other), fiber.Map{"title": "Hijacked"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged courseModels.Module
	require.NoError(t, db.First(&unchanged, module.ID).Error)
	assert.Equal(t, "Unit One", unchanged.Title)
}

func TestDeleteModule(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")
	module := seedModule(t, db, course.ID, "Unit One", 1)
	token := authToken(t, owner)
	path := fmt.Sprintf("/api/instructor/courses/%d/modules/%d", course.ID, module.ID)

	resp, _ := doRequest(t, app, fiber.MethodDelete, path, token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var deleted courseModels.Module
	require.NoError(t, db.First(&deleted, module.ID).Error)
	assert.True(t, deleted.IsDeleted)

	// A second delete no longer sees the module
	resp, _ = doRequest(t, app, fiber.MethodDelete, path, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListModulesOrdered(t *testing.T) {
	db := setupTest(t)
	app := setupApp()

	owner := seedUser(t, db, "owner@example.com", "INSTRUCTOR")
	course := seedCourse(t, db, owner.ID, "DRAFT")
	seedModule(t, db, course.ID, "Unit Two", 2)
	seedModule(t, db, course.ID, "Unit One", 1)

	resp, env := doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/instructor/courses/%d/modules", course.ID), authToken(t, owner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Modules []courseModels.Module `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Modules, 2)
	assert.Equal(t, "Unit One", data.Modules[0].Title)
	assert.Equal(t, "Unit Two", data.Modules[1].Title)
}
