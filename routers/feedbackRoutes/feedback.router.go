package feedbackRoutes

import (
	feedbackControllers "elimu/controllers/feedback"
	"elimu/middleware"
	"elimu/models"
	feedbackValidators "elimu/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoutes(app *fiber.App) {
	testimonialGroup := app.Group("/testimonials")

	testimonialGroup.Get("/", feedbackControllers.GetTestimonials)
	testimonialGroup.Post("/", feedbackValidators.CreateTestimonial(), middleware.JWTMiddleware, feedbackControllers.CreateTestimonial)
	testimonialGroup.Get("/my", middleware.JWTMiddleware, feedbackControllers.MyTestimonials)
	testimonialGroup.Patch("/:id/approve", feedbackValidators.ApproveTestimonial(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), feedbackControllers.ApproveTestimonial)

	opportunityGroup := app.Group("/opportunities")

	opportunityGroup.Get("/", feedbackControllers.GetOpportunities)
	opportunityGroup.Get("/detail/:slug", feedbackValidators.OpportunitySlug(), feedbackControllers.GetOpportunityDetail)
	opportunityGroup.Post("/", feedbackValidators.CreateOpportunity(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RolePartner), feedbackControllers.CreateOpportunity)

	feedbackGroup := app.Group("/feedback")

	feedbackGroup.Post("/", feedbackValidators.CreateFeedback(), middleware.JWTMiddleware, feedbackControllers.CreateFeedback)
	feedbackGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), feedbackControllers.AdminListFeedback)
	feedbackGroup.Patch("/:id/respond", feedbackValidators.RespondFeedback(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), feedbackControllers.RespondFeedback)
}
