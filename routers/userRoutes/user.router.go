package userRoutes

import (
	userControllers "elimu/controllers/users"
	"elimu/middleware"
	"elimu/models"
	userValidators "elimu/validators/users"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", userValidators.UpdateProfile(), middleware.JWTMiddleware, userControllers.UpdateProfile)

	userGroup.Get("/list", userValidators.UserList(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), userControllers.AdminUserList)
}
