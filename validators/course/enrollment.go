package courseValidators

import (
	"strconv"
	"strings"

	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the :id route parameter for enrollment
func EnrollCourse() fiber.Handler {
	return idParam("id", "courseID")
}

// CompleteLesson validates the :course_id and :lesson_id route parameters
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("course_id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course_id parameter!", nil)
		}
		lessonID, err := strconv.Atoi(strings.TrimSpace(c.Params("lesson_id")))
		if err != nil || lessonID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson_id parameter!", nil)
		}
		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// GetCourseProgress validates the :id route parameter
func GetCourseProgress() fiber.Handler {
	return idParam("id", "courseID")
}

type PaginationQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Pagination validates optional page/limit query parameters with defaults
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaginationQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 10
		}
		c.Locals("validatedPagination", reqData)
		return c.Next()
	}
}
