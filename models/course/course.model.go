package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category groups courses in the catalog
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Slug        string `json:"slug" gorm:"unique;not null"`
	Description string `json:"description"`
	Icon        string `json:"icon" gorm:"default:''"` // FontAwesome icon class
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Title            string `json:"title" gorm:"not null"`
	Slug             string `json:"slug" gorm:"unique;not null"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description" gorm:"default:''"`

	CategoryID   *uint  `json:"category_id" gorm:"index"`
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Level        string `json:"level" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Language     string `json:"language" gorm:"default:'both'"`  // english, swahili, both

	ThumbnailURL string `json:"thumbnail_url" gorm:"default:''"`
	IntroVideo   string `json:"intro_video" gorm:"default:''"`

	Price         float64 `json:"price" gorm:"default:0"`
	OriginalPrice float64 `json:"original_price" gorm:"default:0"`
	IsFree        bool    `json:"is_free" gorm:"default:false"`
	IsPremium     bool    `json:"is_premium" gorm:"default:false"`

	Duration             string `json:"duration" gorm:"default:''"` // e.g. 8 weeks, 3 months
	TotalLectures        int    `json:"total_lectures" gorm:"default:0"`
	TotalDurationMinutes int    `json:"total_duration_minutes" gorm:"default:0"`

	IsPublished bool       `json:"is_published" gorm:"default:false"`
	IsFeatured  bool       `json:"is_featured" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`

	EnrolledCount int     `json:"enrolled_count" gorm:"default:0"`
	Rating        float64 `json:"rating" gorm:"default:0"`
	ReviewCount   int     `json:"review_count" gorm:"default:0"`

	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	WhatYouLearn datatypes.JSONSlice[string] `json:"what_you_learn"`
}

// Lesson is an individual lesson within a course
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Order       int    `json:"order" gorm:"column:lesson_order;default:0"`

	VideoURL        string `json:"video_url" gorm:"default:''"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	Content         string `json:"content"`

	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	IsPreview   bool `json:"is_preview" gorm:"default:false"`
	IsPublished bool `json:"is_published" gorm:"default:true"`
}
