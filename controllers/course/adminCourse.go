package courseControllers

import (
	"time"

	"elimu/database"
	"elimu/middleware"
	courseModels "elimu/models/course"
	"elimu/utils"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateCourse creates a course with a unique slug derived from the title
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateCourse").(*courseValidators.CreateCourseRequest)

	slug := utils.Slugify(reqData.Title)
	var existing courseModels.Course
	if err := database.Database.Db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
	}

	level := reqData.Level
	if level == "" {
		level = "beginner"
	}
	language := reqData.Language
	if language == "" {
		language = "both"
	}

	course := courseModels.Course{
		Title:            reqData.Title,
		Slug:             slug,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		CategoryID:       reqData.CategoryID,
		InstructorID:     reqData.InstructorID,
		Level:            level,
		Language:         language,
		ThumbnailURL:     reqData.ThumbnailURL,
		IntroVideo:       reqData.IntroVideo,
		Price:            reqData.Price,
		IsFree:           reqData.IsFree,
		Duration:         reqData.Duration,
		Requirements:     datatypes.NewJSONSlice(reqData.Requirements),
		WhatYouLearn:     datatypes.NewJSONSlice(reqData.WhatYouLearn),
		IsPublished:      reqData.IsPublished,
	}
	if course.IsPublished {
		now := time.Now()
		course.PublishedAt = &now
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse applies a partial update to a course
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData := c.Locals("validatedUpdateCourse").(*courseValidators.UpdateCourseRequest)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.ShortDescription != nil {
		course.ShortDescription = *reqData.ShortDescription
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.Language != nil {
		course.Language = *reqData.Language
	}
	if reqData.ThumbnailURL != nil {
		course.ThumbnailURL = *reqData.ThumbnailURL
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.IsFree != nil {
		course.IsFree = *reqData.IsFree
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}
	if reqData.IsPublished != nil {
		if *reqData.IsPublished && !course.IsPublished {
			now := time.Now()
			course.PublishedAt = &now
		}
		course.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// CreateLesson adds a lesson and refreshes the course duration totals
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData := c.Locals("validatedCreateLesson").(*courseValidators.CreateLessonRequest)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	order := reqData.Order
	if order == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ?", courseID).
			Select("COALESCE(MAX(lesson_order), 0)").Scan(&maxOrder)
		order = maxOrder + 1
	}

	lesson := courseModels.Lesson{
		CourseID:        course.ID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Order:           order,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
		Content:         reqData.Content,
		Attachments:     datatypes.NewJSONSlice(reqData.Attachments),
		IsPreview:       reqData.IsPreview,
		IsPublished:     true,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	database.Database.Db.Model(&course).Updates(map[string]interface{}{
		"total_lectures":         gorm.Expr("total_lectures + 1"),
		"total_duration_minutes": gorm.Expr("total_duration_minutes + ?", lesson.DurationMinutes),
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// CreateCategory creates a catalog category
func CreateCategory(c *fiber.Ctx) error {
	type categoryBody struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	reqData := new(categoryBody)
	if err := c.BodyParser(reqData); err != nil || reqData.Name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category name is required!", nil)
	}

	category := courseModels.Category{
		Name:        reqData.Name,
		Slug:        utils.Slugify(reqData.Name),
		Description: reqData.Description,
		Icon:        reqData.Icon,
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}
