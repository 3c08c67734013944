package course

import "gorm.io/gorm"

// Review is a course review with a 1-5 rating
type Review struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_user_course"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_reviews_user_course"`
	Rating   int    `json:"rating" gorm:"not null"`
	Comment  string `json:"comment"`
}
