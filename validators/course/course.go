package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListQuery carries catalog list filters and pagination
type ListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
	Search     string `query:"search"`
}

// CourseID validates the :id route parameter and stores it as uint
func CourseID() fiber.Handler {
	return paramID("id", "courseID", "Course")
}

// ModuleID validates the :moduleID route parameter and stores it as uint
func ModuleID() fiber.Handler {
	return paramID("moduleID", "moduleID", "Module")
}

func paramID(param, localKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, label+" ID is required!")
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid "+label+" ID!")
		}

		c.Locals(localKey, uint(id))
		return c.Next()
	}
}

// CourseList validates catalog pagination and filters, defaulting to the
// first page when pagination is omitted
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		errors := make(map[string]string)

		if reqData.Page < 0 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 0 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Difficulty != "" && reqData.Difficulty != "BEGINNER" && reqData.Difficulty != "INTERMEDIATE" && reqData.Difficulty != "ADVANCED" {
			errors["difficulty"] = "Difficulty must be one of: BEGINNER, INTERMEDIATE, ADVANCED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Page == 0 {
			reqData.Page = 1
		}
		if reqData.Limit == 0 {
			reqData.Limit = 10
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
