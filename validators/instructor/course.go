package instructorValidator

import (
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required,min=5"`
	Category     string `json:"category" validate:"required,min=2,max=100"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

type CourseUpdateRequest struct {
	Title        string `json:"title" validate:"omitempty,min=3,max=200"`
	Description  string `json:"description" validate:"omitempty,min=5"`
	Category     string `json:"category" validate:"omitempty,min=2,max=100"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

type PublishRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

type ModuleRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	Type       string `json:"type" validate:"required,oneof=VIDEO DOCUMENT TEXT"`
	Content    string `json:"content" validate:"omitempty"`
	AssetURL   string `json:"asset_url" validate:"omitempty,url"`
	OrderIndex int    `json:"order_index" validate:"omitempty,gte=0"`
}

type ModuleUpdateRequest struct {
	Title      string `json:"title" validate:"omitempty,min=3,max=200"`
	Type       string `json:"type" validate:"omitempty,oneof=VIDEO DOCUMENT TEXT"`
	Content    string `json:"content" validate:"omitempty"`
	AssetURL   string `json:"asset_url" validate:"omitempty,url"`
	OrderIndex int    `json:"order_index" validate:"omitempty,gte=0"`
}

// SyncModuleInput is one entry in the desired final module list. A zero ID
// marks a module to create; existing ids not present in the list are removed.
type SyncModuleInput struct {
	ID       uint   `json:"id" validate:"omitempty,gte=0"`
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Type     string `json:"type" validate:"required,oneof=VIDEO DOCUMENT TEXT"`
	Content  string `json:"content" validate:"omitempty"`
	AssetURL string `json:"asset_url" validate:"omitempty,url"`
}

type SyncModulesRequest struct {
	Modules []SyncModuleInput `json:"modules" validate:"dive"`
}

// ImportAssetRequest asks the server to fetch a remote file and re-upload it
// to the object store
type ImportAssetRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func CreateCourse() fiber.Handler {
	return bodyValidator[CourseRequest]("validatedCourse")
}

func UpdateCourse() fiber.Handler {
	return bodyValidator[CourseUpdateRequest]("validatedCourseUpdate")
}

func PublishCourse() fiber.Handler {
	return bodyValidator[PublishRequest]("validatedPublish")
}

func CreateModule() fiber.Handler {
	return bodyValidator[ModuleRequest]("validatedModule")
}

func UpdateModule() fiber.Handler {
	return bodyValidator[ModuleUpdateRequest]("validatedModuleUpdate")
}

func SyncModules() fiber.Handler {
	return bodyValidator[SyncModulesRequest]("validatedModuleSync")
}

func ImportAsset() fiber.Handler {
	return bodyValidator[ImportAssetRequest]("validatedImport")
}

// bodyValidator parses the request body into a fresh T, validates it, and
// hands it to the controller through Locals
func bodyValidator[T any](localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.ErrorMap(err))
		}

		c.Locals(localKey, reqData)
		return c.Next()
	}
}
