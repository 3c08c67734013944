package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate generation statuses. Processing is the initial state;
// completed and failed are terminal.
const (
	CertificateProcessing = "processing"
	CertificateCompleted  = "completed"
	CertificateFailed     = "failed"
)

// Certificate is an issued course completion certificate. The student,
// course and instructor names are snapshots taken at issuance so the
// document stays stable if accounts or courses are later renamed.
type Certificate struct {
	gorm.Model
	CertificateID string `json:"certificate_id" gorm:"unique;not null"` // ELIMU-XXXXXXXX-<course id>
	UserID        uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_certificates_user_course"`
	CourseID      uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_certificates_user_course"`

	StudentName    string    `json:"student_name" gorm:"not null"`
	CourseTitle    string    `json:"course_title" gorm:"not null"`
	InstructorName string    `json:"instructor_name" gorm:"not null"`
	CompletionDate time.Time `json:"completion_date"`

	FileURL         string `json:"file_url" gorm:"default:''"`
	StoragePublicID string `json:"-" gorm:"default:''"`

	Status       string `json:"status" gorm:"default:'processing'"`
	ErrorMessage string `json:"error_message" gorm:"default:''"`

	VerificationCode string `json:"verification_code" gorm:"unique;not null"`
	IsVerified       bool   `json:"is_verified" gorm:"default:true"`
}

// CertificateTemplate is an admin-managed rendering template. The issuance
// path uses the first active default template, or a built-in layout when
// none exists.
type CertificateTemplate struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description"`

	BackgroundImageURL string `json:"background_image_url" gorm:"default:''"`
	LogoURL            string `json:"logo_url" gorm:"default:''"`

	HTMLTemplate string `json:"html_template" gorm:"not null"` // HTML with {placeholders}
	CSSStyles    string `json:"css_styles"`

	IsDefault bool `json:"is_default" gorm:"default:false"`
	IsActive  bool `json:"is_active" gorm:"default:true"`
}
