package courseControllers

import (
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	courseModels "elimu/models/course"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists all course categories
func GetCategories(c *fiber.Ctx) error {
	var categories []courseModels.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetAllCourses lists published courses with filtering, search and pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidators.CourseListQuery)
	if !ok {
		reqData = &courseValidators.CourseListQuery{Page: 1, Limit: 10}
	}

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_published = ?", true)

	if reqData.Category != "" {
		var category courseModels.Category
		if err := database.Database.Db.Where("slug = ?", reqData.Category).First(&category).Error; err == nil {
			db = db.Where("category_id = ?", category.ID)
		}
	}
	if reqData.Level != "" {
		db = db.Where("level = ?", reqData.Level)
	}
	if reqData.Language != "" {
		db = db.Where("language = ?", reqData.Language)
	}
	if reqData.IsFree == "true" {
		db = db.Where("is_free = ?", true)
	}
	if reqData.IsFeatured == "true" {
		db = db.Where("is_featured = ?", true)
	}
	if reqData.Search != "" {
		pattern := "%" + reqData.Search + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetCourseDetails returns a published course with its lessons and instructor
func GetCourseDetails(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_published = ?", slug, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_published = ?", course.ID, true).
		Order("lesson_order asc").Find(&lessons)

	var instructor models.User
	instructorName := ""
	if err := database.Database.Db.First(&instructor, course.InstructorID).Error; err == nil {
		instructorName = instructor.FullName()
	}

	// Record a course view when the request is authenticated
	if userID, ok := c.Locals("userId").(uint); ok {
		database.Database.Db.Create(&models.UserActivity{
			UserID:   userID,
			Action:   "course_view",
			CourseID: &course.ID,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":          course,
		"lessons":         lessons,
		"instructor_name": instructorName,
	})
}
