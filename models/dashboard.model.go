package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserActivity tracks user actions for analytics
type UserActivity struct {
	gorm.Model
	UserID    uint              `json:"user_id" gorm:"index;not null"`
	Action    string            `json:"action" gorm:"not null"` // login, course_view, lesson_complete, course_enroll, review_submit
	CourseID  *uint             `json:"course_id"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	IPAddress string            `json:"ip_address" gorm:"default:''"`
}

// Notification is an in-app notification for a user
type Notification struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"index;not null"`
	NotificationType string `json:"notification_type" gorm:"not null"` // course_update, new_lesson, announcement, achievement, reminder
	Title            string `json:"title" gorm:"not null"`
	Message          string `json:"message"`
	Link             string `json:"link" gorm:"default:''"`
	IsRead           bool   `json:"is_read" gorm:"default:false"`
}

// Achievement is a badge earned by a user
type Achievement struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	BadgeIcon   string `json:"badge_icon" gorm:"default:''"`
}
