package courseControllers

import (
	"errors"

	"elimu/certificates"
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	courseModels "elimu/models/course"
	"elimu/utils"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CertService is wired at startup before any route is registered.
var CertService *certificates.Service

// IssueCertificate handles an explicit issuance request for a completed
// course. A previously failed attempt is discarded and retried.
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}
	if enrollment.Status != courseModels.EnrollmentCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not completed yet!", nil)
	}

	// A failed attempt does not block a retry
	var existing courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		if existing.Status == courseModels.CertificateFailed {
			database.Database.Db.Unscoped().Delete(&existing)
		}
	}

	tmpl, err := certificates.FindDefaultTemplate(database.Database.Db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load certificate template!", nil)
	}

	cert, created, err := CertService.Issue(c.Context(), &user, &course, tmpl)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate generation failed!", cert)
	}

	if created {
		utils.SendCertificateEmail(user.Email, user.FullName(), course.Title, cert.CertificateID, cert.FileURL)
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued!", cert)
}

// GetUserCertificates lists the current user's certificates
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certs []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&certs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certs)
}

// VerifyCertificate is the public verification endpoint. It answers from the
// snapshot stored on the certificate, never from live user or course rows.
func VerifyCertificate(c *fiber.Ctx) error {
	code := c.Locals("verificationCode").(string)

	result, err := CertService.Verify(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Verification failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", result)
}

// ListCertificateTemplates lists all templates for administrators
func ListCertificateTemplates(c *fiber.Ctx) error {
	var templates []courseModels.CertificateTemplate
	if err := database.Database.Db.Order("created_at desc").Find(&templates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch templates!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Templates fetched successfully!", templates)
}

// CreateCertificateTemplate creates a template; marking it default clears the
// flag on every other template.
func CreateCertificateTemplate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTemplate").(*courseValidators.CertificateTemplateRequest)

	template := courseModels.CertificateTemplate{
		Name:               reqData.Name,
		Description:        reqData.Description,
		BackgroundImageURL: reqData.BackgroundImageURL,
		LogoURL:            reqData.LogoURL,
		HTMLTemplate:       reqData.HTMLTemplate,
		CSSStyles:          reqData.CSSStyles,
		IsDefault:          reqData.IsDefault,
		IsActive:           reqData.IsActive,
	}

	tx := database.Database.Db.Begin()
	if template.IsDefault {
		if err := tx.Model(&courseModels.CertificateTemplate{}).Where("is_default = ?", true).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create template!", nil)
		}
	}
	if err := tx.Create(&template).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create template!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Template created successfully!", template)
}

// UpdateCertificateTemplate replaces a template's fields
func UpdateCertificateTemplate(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)
	reqData := c.Locals("validatedTemplate").(*courseValidators.CertificateTemplateRequest)

	var template courseModels.CertificateTemplate
	if err := database.Database.Db.First(&template, templateID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	template.Name = reqData.Name
	template.Description = reqData.Description
	template.BackgroundImageURL = reqData.BackgroundImageURL
	template.LogoURL = reqData.LogoURL
	template.HTMLTemplate = reqData.HTMLTemplate
	template.CSSStyles = reqData.CSSStyles
	template.IsDefault = reqData.IsDefault
	template.IsActive = reqData.IsActive

	tx := database.Database.Db.Begin()
	if template.IsDefault {
		if err := tx.Model(&courseModels.CertificateTemplate{}).Where("is_default = ? AND id <> ?", true, template.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update template!", nil)
		}
	}
	if err := tx.Save(&template).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update template!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template updated successfully!", template)
}

// DeleteCertificateTemplate soft deletes a template
func DeleteCertificateTemplate(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)

	var template courseModels.CertificateTemplate
	if err := database.Database.Db.First(&template, templateID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	if err := database.Database.Db.Delete(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete template!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template deleted successfully!", nil)
}
