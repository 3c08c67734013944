package courseValidators

import (
	"strconv"
	"strings"

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

// idParam validates a positive integer route parameter and stores it in Locals
func idParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing "+param+" parameter!", nil)
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

type CourseListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Category   string `query:"category"`
	Level      string `query:"level"`
	Language   string `query:"language"`
	IsFree     string `query:"is_free"`
	IsFeatured string `query:"is_featured"`
	Search     string `query:"search"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 10
		}
		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}
		c.Locals("courseSlug", slug)
		return c.Next()
	}
}

type CreateCourseRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description" validate:"max=300"`
	CategoryID       *uint    `json:"category_id"`
	InstructorID     uint     `json:"instructor_id" validate:"required"`
	Level            string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Language         string   `json:"language" validate:"omitempty,oneof=english swahili both"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	IntroVideo       string   `json:"intro_video"`
	Price            float64  `json:"price" validate:"gte=0"`
	IsFree           bool     `json:"is_free"`
	Duration         string   `json:"duration"`
	Requirements     []string `json:"requirements"`
	WhatYouLearn     []string `json:"what_you_learn"`
	IsPublished      bool     `json:"is_published"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

type UpdateCourseRequest struct {
	Title            *string  `json:"title" validate:"omitempty,max=200"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description" validate:"omitempty,max=300"`
	Level            *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Language         *string  `json:"language" validate:"omitempty,oneof=english swahili both"`
	ThumbnailURL     *string  `json:"thumbnail_url"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0"`
	IsFree           *bool    `json:"is_free"`
	IsPublished      *bool    `json:"is_published"`
	IsFeatured       *bool    `json:"is_featured"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("courseID", id)
		c.Locals("validatedUpdateCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return idParam("id", "courseID")
}

type CreateLessonRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description"`
	Order           int      `json:"order" validate:"gte=0"`
	VideoURL        string   `json:"video_url"`
	DurationMinutes int      `json:"duration_minutes" validate:"gte=0"`
	Content         string   `json:"content"`
	Attachments     []string `json:"attachments"`
	IsPreview       bool     `json:"is_preview"`
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateLesson", reqData)
		return c.Next()
	}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateReview", reqData)
		return c.Next()
	}
}
