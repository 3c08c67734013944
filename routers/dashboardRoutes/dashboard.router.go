package dashboardRoutes

import (
	dashboardControllers "elimu/controllers/dashboard"
	"elimu/middleware"
	dashboardValidators "elimu/validators/dashboard"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/dashboard")

	dashGroup.Get("/stats", middleware.JWTMiddleware, dashboardControllers.GetDashboardStats)
	dashGroup.Get("/notifications", middleware.JWTMiddleware, dashboardControllers.MyNotifications)
	dashGroup.Patch("/notifications/:id/read", dashboardValidators.NotificationID(), middleware.JWTMiddleware, dashboardControllers.MarkNotificationRead)
	dashGroup.Get("/achievements", middleware.JWTMiddleware, dashboardControllers.MyAchievements)
	dashGroup.Get("/activity", middleware.JWTMiddleware, dashboardControllers.MyActivity)
	dashGroup.Get("/recent-courses", middleware.JWTMiddleware, dashboardControllers.RecentCourses)
}
