package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Testimonial is a student success story, published after admin approval
type Testimonial struct {
	gorm.Model
	UserID   uint  `json:"user_id" gorm:"index;not null"`
	CourseID *uint `json:"course_id"`

	Title   string `json:"title" gorm:"not null"`
	Content string `json:"content" gorm:"not null"`
	Rating  int    `json:"rating" gorm:"not null"` // 1-5

	ImageURL string `json:"image_url" gorm:"default:''"`
	VideoURL string `json:"video_url" gorm:"default:''"`

	Status     string     `json:"status" gorm:"default:'pending'"` // pending, approved, rejected
	IsFeatured bool       `json:"is_featured" gorm:"default:false"`
	ApprovedBy *uint      `json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
}

// Opportunity is an internship, job, scholarship, competition or event listing
type Opportunity struct {
	gorm.Model
	Title           string `json:"title" gorm:"not null"`
	Slug            string `json:"slug" gorm:"unique;not null"`
	Description     string `json:"description"`
	OpportunityType string `json:"opportunity_type" gorm:"not null"` // internship, job, scholarship, competition, event

	Organization     string `json:"organization" gorm:"not null"`
	OrganizationLogo string `json:"organization_logo" gorm:"default:''"`
	Location         string `json:"location" gorm:"default:''"`
	IsRemote         bool   `json:"is_remote" gorm:"default:false"`

	Requirements   datatypes.JSONSlice[string] `json:"requirements"`
	Benefits       datatypes.JSONSlice[string] `json:"benefits"`
	ApplicationURL string                      `json:"application_url" gorm:"not null"`
	Deadline       time.Time                   `json:"deadline" gorm:"not null"`

	Status            string `json:"status" gorm:"default:'active'"` // active, closed, draft
	IsFeatured        bool   `json:"is_featured" gorm:"default:false"`
	ViewsCount        int    `json:"views_count" gorm:"default:0"`
	ApplicationsCount int    `json:"applications_count" gorm:"default:0"`

	PostedBy *uint `json:"posted_by"`
}

// FeedbackSubmission is general platform feedback from a user
type FeedbackSubmission struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	Category string `json:"category" gorm:"not null"` // bug, feature, improvement, complaint, praise, other
	Subject  string `json:"subject" gorm:"not null"`
	Message  string `json:"message" gorm:"not null"`

	ScreenshotURL string `json:"screenshot_url" gorm:"default:''"`

	IsResolved    bool       `json:"is_resolved" gorm:"default:false"`
	AdminResponse string     `json:"admin_response" gorm:"default:''"`
	RespondedBy   *uint      `json:"responded_by"`
	RespondedAt   *time.Time `json:"responded_at"`
}
