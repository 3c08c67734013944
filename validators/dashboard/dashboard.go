package dashboardValidators

import (
	"strconv"
	"strings"

	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the :id route parameter
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		c.Locals("notificationID", id)
		return c.Next()
	}
}
