package instructorController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	courseValidator "learnhub/validators/course"
	instructorValidator "learnhub/validators/instructor"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:            "test-secret",
		SaltRound:         bcrypt.MinCost,
		SessionCookieName: "session_token",
		UploadDir:         t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Enrollment{},
		&courseModels.Wishlist{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.AuthGate)

	group := app.Group("/api/instructor", middleware.RequireRole("INSTRUCTOR"))
	group.Get("/courses", GetOwnCourses)
	group.Post("/courses", instructorValidator.CreateCourse(), CreateCourse)
	group.Put("/courses/:id", courseValidator.CourseID(), instructorValidator.UpdateCourse(), UpdateCourse)
	group.Patch("/courses/:id/publish", courseValidator.CourseID(), instructorValidator.PublishCourse(), PublishCourse)
	group.Delete("/courses/:id", courseValidator.CourseID(), DeleteCourse)
	group.Get("/courses/:id/modules", courseValidator.CourseID(), ListModules)
	group.Post("/courses/:id/modules", courseValidator.CourseID(), instructorValidator.CreateModule(), CreateModule)
	group.Put("/courses/:id/modules/sync", courseValidator.CourseID(), instructorValidator.SyncModules(), SyncModules)
	group.Put("/courses/:id/modules/:moduleID", courseValidator.CourseID(), courseValidator.ModuleID(), instructorValidator.UpdateModule(), UpdateModule)
	group.Delete("/courses/:id/modules/:moduleID", courseValidator.CourseID(), courseValidator.ModuleID(), DeleteModule)

	return app
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Role: role, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, instructorID uint, status string) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		InstructorID: instructorID,
		Title:        "Intro to Go",
		Description:  "From zero to gopher",
		Category:     "programming",
		Status:       status,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, title string, orderIndex int) courseModels.Module {
	t.Helper()
	module := courseModels.Module{CourseID: courseID, Title: title, Type: "TEXT", OrderIndex: orderIndex}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}
