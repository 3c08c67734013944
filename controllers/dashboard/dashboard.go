package dashboardControllers

import (
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	courseModels "elimu/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetDashboardStats returns role-appropriate dashboard figures
func GetDashboardStats(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	stats := fiber.Map{"role": user.Role}

	switch user.Role {
	case models.RoleStudent:
		var enrolled, completed, certs int64
		db.Model(&courseModels.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrolled)
		db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND status = ?", user.ID, courseModels.EnrollmentCompleted).Count(&completed)
		db.Model(&courseModels.Certificate{}).Where("user_id = ? AND status = ?", user.ID, courseModels.CertificateCompleted).Count(&certs)

		var profile models.StudentProfile
		db.Where("user_id = ?", user.ID).First(&profile)

		stats["courses_enrolled"] = enrolled
		stats["courses_completed"] = completed
		stats["certificates"] = certs
		stats["learning_hours"] = profile.TotalLearningHours
		stats["current_streak_days"] = profile.CurrentStreakDays

	case models.RoleInstructor:
		var courses, students, reviews int64
		db.Model(&courseModels.Course{}).Where("instructor_id = ?", user.ID).Count(&courses)
		db.Model(&courseModels.Enrollment{}).
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.instructor_id = ?", user.ID).Count(&students)
		db.Model(&courseModels.Review{}).
			Joins("JOIN courses ON courses.id = reviews.course_id").
			Where("courses.instructor_id = ?", user.ID).Count(&reviews)

		var avgRating float64
		db.Model(&courseModels.Course{}).Where("instructor_id = ? AND review_count > 0", user.ID).
			Select("COALESCE(AVG(rating), 0)").Scan(&avgRating)

		stats["courses_created"] = courses
		stats["total_students"] = students
		stats["total_reviews"] = reviews
		stats["average_rating"] = avgRating

	case models.RolePartner:
		var posted, active int64
		db.Model(&models.Opportunity{}).Where("posted_by = ?", user.ID).Count(&posted)
		db.Model(&models.Opportunity{}).Where("posted_by = ? AND status = ?", user.ID, "active").Count(&active)

		var views int64
		db.Model(&models.Opportunity{}).Where("posted_by = ?", user.ID).
			Select("COALESCE(SUM(views_count), 0)").Scan(&views)

		stats["opportunities_posted"] = posted
		stats["opportunities_active"] = active
		stats["total_views"] = views

	case models.RoleAdmin:
		var users, courses, enrollments, pendingTestimonials int64
		db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&users)
		db.Model(&courseModels.Course{}).Count(&courses)
		db.Model(&courseModels.Enrollment{}).Count(&enrollments)
		db.Model(&models.Testimonial{}).Where("status = ?", "pending").Count(&pendingTestimonials)

		stats["total_users"] = users
		stats["total_courses"] = courses
		stats["total_enrollments"] = enrollments
		stats["pending_testimonials"] = pendingTestimonials
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}

// MyNotifications lists the user's notifications, unread first
func MyNotifications(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var notifications []models.Notification
	if err := database.Database.Db.Where("user_id = ?", user.ID).
		Order("is_read asc, created_at desc").Limit(100).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	var unread int64
	database.Database.Db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", user.ID, false).Count(&unread)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead marks one of the user's notifications as read
func MarkNotificationRead(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	notificationID := c.Locals("notificationID").(int)

	var notification models.Notification
	if err := database.Database.Db.Where("id = ? AND user_id = ?", notificationID, user.ID).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	notification.IsRead = true
	if err := database.Database.Db.Save(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", notification)
}

// MyAchievements lists the user's earned badges
func MyAchievements(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var achievements []models.Achievement
	if err := database.Database.Db.Where("user_id = ?", user.ID).Order("created_at desc").Find(&achievements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", achievements)
}

// MyActivity returns the user's 50 most recent activity records
func MyActivity(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var activities []models.UserActivity
	if err := database.Database.Db.Where("user_id = ?", user.ID).
		Order("created_at desc").Limit(50).Find(&activities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity fetched successfully!", activities)
}

// RecentCourses returns the user's five most recently accessed enrollments
func RecentCourses(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", user.ID).
		Order("last_accessed desc").Limit(5).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recent courses!", nil)
	}

	type RecentCourse struct {
		courseModels.Enrollment
		CourseTitle  string `json:"course_title"`
		CourseSlug   string `json:"course_slug"`
		ThumbnailURL string `json:"thumbnail_url"`
	}

	result := make([]RecentCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.First(&course, e.CourseID)
		result[i] = RecentCourse{
			Enrollment:   e,
			CourseTitle:  course.Title,
			CourseSlug:   course.Slug,
			ThumbnailURL: course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent courses fetched successfully!", result)
}
