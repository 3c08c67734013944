package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile holds extended profile information shared by every role
type UserProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	EducationLevel string `json:"education_level" gorm:"default:''"`
	Institution    string `json:"institution" gorm:"default:''"`
	Occupation     string `json:"occupation" gorm:"default:''"`
	LinkedinURL    string `json:"linkedin_url" gorm:"default:''"`
	GithubURL      string `json:"github_url" gorm:"default:''"`
	Website        string `json:"website" gorm:"default:''"`

	LearningGoals string                      `json:"learning_goals" gorm:"default:''"`
	Interests     datatypes.JSONSlice[string] `json:"interests"`

	EmailNotifications bool `json:"email_notifications" gorm:"default:true"`
	CourseUpdates      bool `json:"course_updates" gorm:"default:true"`
	MarketingEmails    bool `json:"marketing_emails" gorm:"default:false"`
}

// StudentProfile holds learning stats for student accounts
type StudentProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	StudentID      string     `json:"student_id" gorm:"default:''"`
	EnrollmentDate *time.Time `json:"enrollment_date"`

	TotalCoursesEnrolled int     `json:"total_courses_enrolled" gorm:"default:0"`
	CoursesCompleted     int     `json:"courses_completed" gorm:"default:0"`
	TotalLearningHours   float64 `json:"total_learning_hours" gorm:"default:0"`
	CurrentStreakDays    int     `json:"current_streak_days" gorm:"default:0"`
	LongestStreakDays    int     `json:"longest_streak_days" gorm:"default:0"`

	TotalCertificates int                         `json:"total_certificates" gorm:"default:0"`
	BadgesEarned      datatypes.JSONSlice[string] `json:"badges_earned"`
}

// InstructorProfile holds teaching stats and payout details for instructors
type InstructorProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	Title             string                      `json:"title" gorm:"default:''"`
	ExpertiseAreas    datatypes.JSONSlice[string] `json:"expertise_areas"`
	YearsOfExperience int                         `json:"years_of_experience" gorm:"default:0"`

	TotalCoursesCreated int     `json:"total_courses_created" gorm:"default:0"`
	TotalStudentsTaught int     `json:"total_students_taught" gorm:"default:0"`
	AverageRating       float64 `json:"average_rating" gorm:"default:0"`
	TotalReviews        int     `json:"total_reviews" gorm:"default:0"`

	TotalEarnings   float64 `json:"total_earnings" gorm:"default:0"`
	PendingEarnings float64 `json:"pending_earnings" gorm:"default:0"`

	IsVerifiedInstructor bool       `json:"is_verified_instructor" gorm:"default:false"`
	VerifiedAt           *time.Time `json:"verified_at"`
}

// AdminProfile holds admin level and capability flags
type AdminProfile struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	AdminLevel string `json:"admin_level" gorm:"default:'moderator'"` // super, manager, moderator
	Department string `json:"department" gorm:"default:''"`

	CanApproveCourses bool `json:"can_approve_courses" gorm:"default:false"`
	CanManageUsers    bool `json:"can_manage_users" gorm:"default:false"`
	CanViewAnalytics  bool `json:"can_view_analytics" gorm:"default:true"`
}

// CreateProfilesForUser creates the shared profile row plus the role-specific
// profile row for a freshly registered user. Called explicitly from signup;
// there is no save hook doing this behind the scenes.
func CreateProfilesForUser(db *gorm.DB, user *User) error {
	if err := db.Create(&UserProfile{UserID: user.ID}).Error; err != nil {
		return err
	}

	now := time.Now()
	switch user.Role {
	case RoleStudent:
		return db.Create(&StudentProfile{UserID: user.ID, EnrollmentDate: &now}).Error
	case RoleInstructor:
		return db.Create(&InstructorProfile{UserID: user.ID}).Error
	case RoleAdmin:
		return db.Create(&AdminProfile{UserID: user.ID}).Error
	case RolePartner:
		// Partners only carry the shared profile
		return nil
	}
	return nil
}
