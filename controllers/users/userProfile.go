package userControllers

import (
	"elimu/database"
	"elimu/middleware"
	"elimu/models"
	userValidators "elimu/validators/users"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// roleProfile fetches the role-specific profile row for a user, or nil when
// the role carries none.
func roleProfile(userID uint, role models.Role) interface{} {
	db := database.Database.Db
	switch role {
	case models.RoleStudent:
		var p models.StudentProfile
		if err := db.Where("user_id = ?", userID).First(&p).Error; err == nil {
			return p
		}
	case models.RoleInstructor:
		var p models.InstructorProfile
		if err := db.Where("user_id = ?", userID).First(&p).Error; err == nil {
			return p
		}
	case models.RoleAdmin:
		var p models.AdminProfile
		if err := db.Where("user_id = ?", userID).First(&p).Error; err == nil {
			return p
		}
	case models.RolePartner:
		// Partners only carry the shared profile
	}
	return nil
}

// GetProfile returns the current user with shared and role-specific profiles
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var profile models.UserProfile
	database.Database.Db.Where("user_id = ?", userID).First(&profile)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":         user,
		"profile":      profile,
		"role_profile": roleProfile(user.ID, user.Role),
	})
}

// UpdateProfile patches user and shared-profile fields from the request
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedUpdateProfile").(*userValidators.UpdateProfileRequest)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.FirstName != nil {
		user.FirstName = *reqData.FirstName
	}
	if reqData.LastName != nil {
		user.LastName = *reqData.LastName
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}
	if reqData.ProfileImage != nil {
		user.ProfileImage = *reqData.ProfileImage
	}
	if reqData.PhoneNumber != nil {
		user.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.Country != nil {
		user.Country = *reqData.Country
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		if reqData.Occupation != nil {
			profile.Occupation = *reqData.Occupation
		}
		if reqData.LinkedinURL != nil {
			profile.LinkedinURL = *reqData.LinkedinURL
		}
		if reqData.GithubURL != nil {
			profile.GithubURL = *reqData.GithubURL
		}
		if reqData.Website != nil {
			profile.Website = *reqData.Website
		}
		if reqData.Interests != nil {
			profile.Interests = datatypes.NewJSONSlice(reqData.Interests)
		}
		database.Database.Db.Save(&profile)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

// AdminUserList lists users with optional role filter, admin only
func AdminUserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*userValidators.UserListQuery)
	if !ok {
		reqData = &userValidators.UserListQuery{Page: 1, Limit: 10}
	}

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if reqData.Role != "" {
		role, err := models.ParseRole(reqData.Role)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid role filter!", nil)
		}
		db = db.Where("role = ?", role)
	}

	var total int64
	db.Count(&total)

	offset := (reqData.Page - 1) * reqData.Limit

	var users []models.User
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
