package courseRoutes

import (
	courseControllers "elimu/controllers/course"
	"elimu/middleware"
	"elimu/models"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/courses")

	adminGroup.Post("/", courseValidators.CreateCourse(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), courseControllers.CreateCourse)
	adminGroup.Put("/:id", courseValidators.UpdateCourse(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), courseControllers.UpdateCourse)
	adminGroup.Post("/:id/lessons", courseValidators.CourseID(), courseValidators.CreateLesson(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), courseControllers.CreateLesson)
	adminGroup.Post("/categories", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseControllers.CreateCategory)

	templateGroup := app.Group("/admin/certificate-templates")

	templateGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseControllers.ListCertificateTemplates)
	templateGroup.Post("/", courseValidators.CertificateTemplate(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseControllers.CreateCertificateTemplate)
	templateGroup.Put("/:id", courseValidators.TemplateID(), courseValidators.CertificateTemplate(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseControllers.UpdateCertificateTemplate)
	templateGroup.Delete("/:id", courseValidators.TemplateID(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseControllers.DeleteCertificateTemplate)
}
