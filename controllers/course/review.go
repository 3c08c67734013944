package courseControllers

import (
	"errors"

	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	courseModels "elimu/models/course"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCourseReviews lists reviews for a course, newest first
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []courseModels.Review
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithUser struct {
		courseModels.Review
		ReviewerName string `json:"reviewer_name"`
	}

	result := make([]ReviewWithUser, len(reviews))
	for i, r := range reviews {
		var user models.User
		name := ""
		if err := database.Database.Db.First(&user, r.UserID).Error; err == nil {
			name = user.FullName()
		}
		result[i] = ReviewWithUser{Review: r, ReviewerName: name}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews":      result,
		"rating":       course.Rating,
		"review_count": course.ReviewCount,
	})
}

// CreateReview lets an enrolled user review a course once
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	reqData := c.Locals("validatedCreateReview").(*courseValidators.CreateReviewRequest)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only enrolled users can review a course!", nil)
	}

	review := courseModels.Review{
		UserID:   userID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	recalculateCourseRating(&course)

	database.Database.Db.Create(&models.UserActivity{
		UserID:   userID,
		Action:   "review_submit",
		CourseID: &course.ID,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// recalculateCourseRating recomputes the denormalized rating fields from the
// review rows.
func recalculateCourseRating(course *courseModels.Course) {
	var count int64
	var avg float64

	database.Database.Db.Model(&courseModels.Review{}).Where("course_id = ?", course.ID).Count(&count)
	database.Database.Db.Model(&courseModels.Review{}).Where("course_id = ?", course.ID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg)

	database.Database.Db.Model(course).Updates(map[string]interface{}{
		"rating":       avg,
		"review_count": count,
	})
}
