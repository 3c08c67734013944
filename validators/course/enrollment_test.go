package courseValidators

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseProgressParamReachesHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:id/progress", GetCourseProgress(), func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(c.Locals("courseID").(int)))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/42/progress", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "42", string(body))
}

func TestGetCourseProgressRejectsBadID(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:id/progress", GetCourseProgress(), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	for _, path := range []string{"/courses/abc/progress", "/courses/-1/progress", "/courses/0/progress"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "path %s", path)
	}
}

func TestCompleteLessonParamsReachHandler(t *testing.T) {
	app := fiber.New()
	app.Post("/courses/:course_id/lessons/:lesson_id/complete", CompleteLesson(), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("%d/%d", c.Locals("courseID").(int), c.Locals("lessonID").(int)))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/courses/7/lessons/3/complete", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "7/3", string(body))
}

func TestEnrollCourseParamReachesHandler(t *testing.T) {
	app := fiber.New()
	app.Post("/courses/:id/enroll", EnrollCourse(), func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(c.Locals("courseID").(int)))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/courses/9/enroll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "9", string(body))
}
