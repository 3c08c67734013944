package courseValidators

import (
	"regexp"
	"strings"

	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

var verificationCodePattern = regexp.MustCompile(`^[A-F0-9]{12}$`)

// IssueCertificate validates the :id route parameter for an issue attempt
func IssueCertificate() fiber.Handler {
	return idParam("id", "courseID")
}

// VerifyCode validates the :code route parameter
func VerifyCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
		if !verificationCodePattern.MatchString(code) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification code format!", nil)
		}
		c.Locals("verificationCode", code)
		return c.Next()
	}
}

type CertificateTemplateRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	Description        string `json:"description"`
	BackgroundImageURL string `json:"background_image_url"`
	LogoURL            string `json:"logo_url"`
	HTMLTemplate       string `json:"html_template" validate:"required"`
	CSSStyles          string `json:"css_styles"`
	IsDefault          bool   `json:"is_default"`
	IsActive           bool   `json:"is_active"`
}

func CertificateTemplate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CertificateTemplateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedTemplate", reqData)
		return c.Next()
	}
}

// TemplateID validates the :id route parameter for template updates
func TemplateID() fiber.Handler {
	return idParam("id", "templateID")
}
