package courseControllers

import (
	"errors"
	"log"
	"time"

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

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_published = ?", courseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course!", existingEnrollment)
	}

	now := time.Now()
	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     uint(courseID),
		Status:       courseModels.EnrollmentActive,
		LastAccessed: &now,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		// Lost a concurrent enroll race: the winner's row is the enrollment
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingEnrollment).Error; ferr == nil {
				return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course!", existingEnrollment)
			}
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	database.Database.Db.Model(&course).Update("enrolled_count", gorm.Expr("enrolled_count + 1"))

	database.Database.Db.Model(&models.StudentProfile{}).
		Where("user_id = ?", userID).
		Update("total_courses_enrolled", gorm.Expr("total_courses_enrolled + 1"))

	database.Database.Db.Create(&models.UserActivity{
		UserID:   userID,
		Action:   "course_enroll",
		CourseID: &course.ID,
	})

	utils.SendEnrollmentEmail(user.Email, user.FullName(), course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// MarkLessonComplete records a lesson completion, recomputes enrollment
// progress and, when the course reaches 100%, issues the completion
// certificate in the same request cycle.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_published = ?", lessonID, courseID, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in this course!", nil)
	}

	now := time.Now()

	// Upsert the per-lesson progress record
	var progress courseModels.LessonProgress
	err := database.Database.Db.Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, lesson.ID).First(&progress).Error
	if err != nil {
		progress = courseModels.LessonProgress{
			EnrollmentID: enrollment.ID,
			LessonID:     lesson.ID,
			Completed:    true,
			CompletedAt:  &now,
			Attempts:     1,
		}
		database.Database.Db.Create(&progress)
	} else {
		progress.Completed = true
		progress.CompletedAt = &now
		progress.Attempts++
		database.Database.Db.Save(&progress)
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_published = ?", courseID, true).Count(&totalLessons)

	completedNow := enrollment.RecordLessonCompletion(lesson.ID, int(totalLessons))
	enrollment.LastAccessed = &now

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	database.Database.Db.Create(&models.UserActivity{
		UserID:   userID,
		Action:   "lesson_complete",
		CourseID: &course.ID,
	})

	response := fiber.Map{"enrollment": enrollment}

	if completedNow {
		onCourseCompleted(c, &user, &course, response)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked complete!", response)
}

// onCourseCompleted runs the completion side effects: stats, achievement,
// notification, and synchronous certificate issuance.
func onCourseCompleted(c *fiber.Ctx, user *models.User, course *courseModels.Course, response fiber.Map) {
	db := database.Database.Db

	var profile models.StudentProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		profile.CoursesCompleted++
		db.Save(&profile)
	}

	db.Create(&models.Achievement{
		UserID:      user.ID,
		Title:       "Course Completed: " + course.Title,
		Description: "Completed all lessons in " + course.Title,
		BadgeIcon:   "fa-graduation-cap",
	})

	tmpl, err := certificates.FindDefaultTemplate(db)
	if err != nil {
		log.Printf("Failed to resolve default certificate template: %v", err)
	}

	cert, created, err := CertService.Issue(c.Context(), user, course, tmpl)
	if err != nil {
		// The failed certificate record is persisted; surface it with the error
		log.Printf("Certificate issuance failed for user %d course %d: %v", user.ID, course.ID, err)
		if cert != nil {
			response["certificate"] = cert
		}
		response["certificate_error"] = err.Error()
		return
	}

	response["certificate"] = cert

	if created && cert.Status == courseModels.CertificateCompleted {
		db.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).
			Update("total_certificates", gorm.Expr("total_certificates + 1"))

		db.Create(&models.Notification{
			UserID:           user.ID,
			NotificationType: "achievement",
			Title:            "Certificate ready",
			Message:          "Your certificate for " + course.Title + " is ready to download.",
			Link:             cert.FileURL,
		})

		utils.SendCertificateEmail(user.Email, user.FullName(), course.Title, cert.CertificateID, cert.FileURL)
	}
}

// GetUserProgress returns the enrollment progress for a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var lessonProgress []courseModels.LessonProgress
	database.Database.Db.Where("enrollment_id = ?", enrollment.ID).Find(&lessonProgress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"lessons":    lessonProgress,
	})
}

// GetUserEnrollmentsList gets all enrollments for the current user with course info
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, _ := c.Locals("validatedPagination").(*courseValidators.PaginationQuery)
	page, limit := 1, 10
	if reqData != nil {
		page, limit = reqData.Page, reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ?", userID)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle string `json:"course_title"`
		CourseSlug  string `json:"course_slug"`
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.First(&course, e.CourseID)
		result[i] = EnrollmentWithCourse{
			Enrollment:  e,
			CourseTitle: course.Title,
			CourseSlug:  course.Slug,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
