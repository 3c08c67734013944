package courseRoutes

import (
	courseControllers "elimu/controllers/course"
	"elimu/middleware"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Public catalog
	courseGroup.Get("/categories", courseControllers.GetCategories)
	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/detail/:slug", courseValidators.GetCourseDetail(), courseControllers.GetCourseDetails)
	courseGroup.Get("/:id/reviews", courseValidators.CourseID(), courseControllers.GetCourseReviews)

	// Public certificate verification
	app.Get("/certificates/verify/:code", courseValidators.VerifyCode(), courseControllers.VerifyCertificate)

	// Learner routes
	courseGroup.Post("/:id/enroll", courseValidators.EnrollCourse(), middleware.JWTMiddleware, courseControllers.EnrollInCourse)
	courseGroup.Post("/:course_id/lessons/:lesson_id/complete", courseValidators.CompleteLesson(), middleware.JWTMiddleware, courseControllers.MarkLessonComplete)
	courseGroup.Get("/:id/progress", courseValidators.GetCourseProgress(), middleware.JWTMiddleware, courseControllers.GetUserProgress)
	courseGroup.Get("/my/enrollments", courseValidators.Pagination(), middleware.JWTMiddleware, courseControllers.GetUserEnrollmentsList)
	courseGroup.Post("/:id/reviews", courseValidators.CourseID(), courseValidators.CreateReview(), middleware.JWTMiddleware, courseControllers.CreateReview)

	// Certificates
	courseGroup.Post("/:id/certificate", courseValidators.IssueCertificate(), middleware.JWTMiddleware, courseControllers.IssueCertificate)
	courseGroup.Get("/my/certificates", middleware.JWTMiddleware, courseControllers.GetUserCertificates)
}
