package userValidators

import (
	"elimu/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UpdateProfileRequest struct {
	FirstName    *string  `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string  `json:"last_name" validate:"omitempty,max=100"`
	Bio          *string  `json:"bio" validate:"omitempty,max=2000"`
	ProfileImage *string  `json:"profile_image"`
	PhoneNumber  *string  `json:"phone_number" validate:"omitempty,max=20"`
	Country      *string  `json:"country" validate:"omitempty,max=100"`
	Occupation   *string  `json:"occupation" validate:"omitempty,max=100"`
	LinkedinURL  *string  `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url" validate:"omitempty,url"`
	Website      *string  `json:"website" validate:"omitempty,url"`
	Interests    []string `json:"interests"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[fe.Field()] = "failed on " + fe.Tag()
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

type UserListQuery struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Role  string `query:"role"`
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 10
		}
		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}
