package feedbackControllers

import (
	"time"

	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	"elimu/utils"
	feedbackValidators "elimu/validators/feedback"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetTestimonials lists approved testimonials, featured first
func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := database.Database.Db.Where("status = ?", "approved").
		Order("is_featured desc, created_at desc").Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	type TestimonialWithUser struct {
		models.Testimonial
		AuthorName string `json:"author_name"`
	}

	result := make([]TestimonialWithUser, len(testimonials))
	for i, t := range testimonials {
		var user models.User
		name := ""
		if err := database.Database.Db.First(&user, t.UserID).Error; err == nil {
			name = user.FullName()
		}
		result[i] = TestimonialWithUser{Testimonial: t, AuthorName: name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", result)
}

// CreateTestimonial submits a testimonial for moderation
func CreateTestimonial(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedTestimonial").(*feedbackValidators.CreateTestimonialRequest)

	testimonial := models.Testimonial{
		UserID:   userID,
		CourseID: reqData.CourseID,
		Title:    reqData.Title,
		Content:  reqData.Content,
		Rating:   reqData.Rating,
		ImageURL: reqData.ImageURL,
		VideoURL: reqData.VideoURL,
		Status:   "pending",
	}

	if err := database.Database.Db.Create(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit testimonial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial submitted for review!", testimonial)
}

// MyTestimonials lists the current user's testimonials in any status
func MyTestimonials(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var testimonials []models.Testimonial
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully!", testimonials)
}

// ApproveTestimonial approves or rejects a pending testimonial, admin only
func ApproveTestimonial(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	testimonialID := c.Locals("testimonialID").(int)
	reqData := c.Locals("validatedApproveTestimonial").(*feedbackValidators.ApproveTestimonialRequest)

	var testimonial models.Testimonial
	if err := database.Database.Db.First(&testimonial, testimonialID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found!", nil)
	}

	now := time.Now()
	if reqData.Approve {
		testimonial.Status = "approved"
		testimonial.IsFeatured = reqData.IsFeatured
		testimonial.ApprovedBy = &adminID
		testimonial.ApprovedAt = &now
	} else {
		testimonial.Status = "rejected"
	}

	if err := database.Database.Db.Save(&testimonial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update testimonial!", nil)
	}

	database.Database.Db.Create(&models.Notification{
		UserID:           testimonial.UserID,
		NotificationType: "announcement",
		Title:            "Testimonial " + testimonial.Status,
		Message:          "Your testimonial \"" + testimonial.Title + "\" has been " + testimonial.Status + ".",
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully!", testimonial)
}

// GetOpportunities lists active opportunities, featured first
func GetOpportunities(c *fiber.Ctx) error {
	db := database.Database.Db.Where("status = ?", "active")

	if oppType := c.Query("type"); oppType != "" {
		db = db.Where("opportunity_type = ?", oppType)
	}
	if c.Query("is_remote") == "true" {
		db = db.Where("is_remote = ?", true)
	}

	var opportunities []models.Opportunity
	if err := db.Order("is_featured desc, deadline asc").Find(&opportunities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch opportunities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Opportunities fetched successfully!", opportunities)
}

// GetOpportunityDetail returns an opportunity by slug and counts the view
func GetOpportunityDetail(c *fiber.Ctx) error {
	slug := c.Locals("opportunitySlug").(string)

	var opportunity models.Opportunity
	if err := database.Database.Db.Where("slug = ?", slug).First(&opportunity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Opportunity not found!", nil)
	}

	database.Database.Db.Model(&opportunity).Update("views_count", gorm.Expr("views_count + 1"))
	opportunity.ViewsCount++

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Opportunity fetched successfully!", opportunity)
}

// CreateOpportunity posts a listing, admins and partners only
func CreateOpportunity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedOpportunity").(*feedbackValidators.CreateOpportunityRequest)

	slug := utils.Slugify(reqData.Title)
	var existing models.Opportunity
	if err := database.Database.Db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An opportunity with this title already exists!", nil)
	}

	opportunity := models.Opportunity{
		Title:            reqData.Title,
		Slug:             slug,
		Description:      reqData.Description,
		OpportunityType:  reqData.OpportunityType,
		Organization:     reqData.Organization,
		OrganizationLogo: reqData.OrganizationLogo,
		Location:         reqData.Location,
		IsRemote:         reqData.IsRemote,
		Requirements:     datatypes.NewJSONSlice(reqData.Requirements),
		Benefits:         datatypes.NewJSONSlice(reqData.Benefits),
		ApplicationURL:   reqData.ApplicationURL,
		Deadline:         reqData.Deadline,
		Status:           "active",
		IsFeatured:       reqData.IsFeatured,
		PostedBy:         &userID,
	}

	if err := database.Database.Db.Create(&opportunity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create opportunity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Opportunity created successfully!", opportunity)
}

// CreateFeedback records a platform feedback submission
func CreateFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedFeedback").(*feedbackValidators.CreateFeedbackRequest)

	feedback := models.FeedbackSubmission{
		UserID:        userID,
		Category:      reqData.Category,
		Subject:       reqData.Subject,
		Message:       reqData.Message,
		ScreenshotURL: reqData.ScreenshotURL,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully!", feedback)
}

// AdminListFeedback lists all feedback submissions, unresolved first
func AdminListFeedback(c *fiber.Ctx) error {
	var submissions []models.FeedbackSubmission
	if err := database.Database.Db.Order("is_resolved asc, created_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", submissions)
}

// RespondFeedback records an admin response on a feedback submission
func RespondFeedback(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	feedbackID := c.Locals("feedbackID").(int)
	reqData := c.Locals("validatedRespondFeedback").(*feedbackValidators.RespondFeedbackRequest)

	var feedback models.FeedbackSubmission
	if err := database.Database.Db.First(&feedback, feedbackID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	now := time.Now()
	feedback.AdminResponse = reqData.Response
	feedback.IsResolved = reqData.Resolve
	feedback.RespondedBy = &adminID
	feedback.RespondedAt = &now

	if err := database.Database.Db.Save(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback response saved!", feedback)
}
