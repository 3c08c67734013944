package feedbackValidators

import (
	"strconv"
	"strings"
	"time"

	"elimu/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.ValidationErrors into a field -> tag map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "failed on " + fe.Tag()
		}
	} else {
		errors["body"] = err.Error()
	}
	return errors
}

type CreateTestimonialRequest struct {
	CourseID *uint  `json:"course_id"`
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

func CreateTestimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTestimonialRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedTestimonial", reqData)
		return c.Next()
	}
}

type ApproveTestimonialRequest struct {
	Approve    bool   `json:"approve"`
	IsFeatured bool   `json:"is_featured"`
	Reason     string `json:"reason" validate:"max=500"`
}

func ApproveTestimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		reqData := new(ApproveTestimonialRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("testimonialID", id)
		c.Locals("validatedApproveTestimonial", reqData)
		return c.Next()
	}
}

type CreateOpportunityRequest struct {
	Title            string    `json:"title" validate:"required,max=200"`
	Description      string    `json:"description" validate:"required"`
	OpportunityType  string    `json:"opportunity_type" validate:"required,oneof=internship job scholarship competition event"`
	Organization     string    `json:"organization" validate:"required,max=200"`
	OrganizationLogo string    `json:"organization_logo"`
	Location         string    `json:"location" validate:"max=200"`
	IsRemote         bool      `json:"is_remote"`
	Requirements     []string  `json:"requirements"`
	Benefits         []string  `json:"benefits"`
	ApplicationURL   string    `json:"application_url" validate:"required,url"`
	Deadline         time.Time `json:"deadline" validate:"required"`
	IsFeatured       bool      `json:"is_featured"`
}

func CreateOpportunity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOpportunityRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		if !reqData.Deadline.After(time.Now()) {
			return middleware.ValidationErrorResponse(c, map[string]string{"deadline": "must be in the future"})
		}
		c.Locals("validatedOpportunity", reqData)
		return c.Next()
	}
}

func OpportunitySlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Opportunity slug is required!", nil)
		}
		c.Locals("opportunitySlug", slug)
		return c.Next()
	}
}

type CreateFeedbackRequest struct {
	Category      string `json:"category" validate:"required,oneof=bug feature improvement complaint praise other"`
	Subject       string `json:"subject" validate:"required,max=200"`
	Message       string `json:"message" validate:"required"`
	ScreenshotURL string `json:"screenshot_url"`
}

func CreateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateFeedbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

type RespondFeedbackRequest struct {
	Response string `json:"response" validate:"required"`
	Resolve  bool   `json:"resolve"`
}

func RespondFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		reqData := new(RespondFeedbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("feedbackID", id)
		c.Locals("validatedRespondFeedback", reqData)
		return c.Next()
	}
}
