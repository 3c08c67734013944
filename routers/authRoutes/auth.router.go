package authRoutes

import (
	authController "elimu/controllers/auth"
	"elimu/middleware"
	authValidators "elimu/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authController.Signup)
	authGroup.Post("/login", authValidators.Login(), authController.Login)
	authGroup.Put("/change/password", authValidators.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
}
