package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment statuses
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

// Enrollment tracks a user's enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Status   string `json:"status" gorm:"default:'active'"`

	Progress         float64                   `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	CompletedLessons datatypes.JSONSlice[uint] `json:"completed_lessons"`

	CompletedAt  *time.Time `json:"completed_at"`
	LastAccessed *time.Time `json:"last_accessed"`
}

// HasCompletedLesson reports whether the lesson is already in the completed list.
func (e *Enrollment) HasCompletedLesson(lessonID uint) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// RecordLessonCompletion appends the lesson and recomputes progress against
// the course's total lesson count. Returns true when this call transitioned
// the enrollment to completed.
func (e *Enrollment) RecordLessonCompletion(lessonID uint, totalLessons int) bool {
	if e.HasCompletedLesson(lessonID) {
		return false
	}
	e.CompletedLessons = append(e.CompletedLessons, lessonID)

	if totalLessons > 0 {
		e.Progress = float64(len(e.CompletedLessons)) / float64(totalLessons) * 100
	} else {
		e.Progress = 0
	}

	if totalLessons > 0 && len(e.CompletedLessons) >= totalLessons && e.Status != EnrollmentCompleted {
		e.Status = EnrollmentCompleted
		now := time.Now()
		e.CompletedAt = &now
		return true
	}
	return false
}

// LessonProgress tracks individual lesson completion within an enrollment
type LessonProgress struct {
	gorm.Model
	EnrollmentID uint `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_lesson_progress_enrollment_lesson"`
	LessonID     uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_lesson_progress_enrollment_lesson"`

	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`

	TimeSpentSeconds int `json:"time_spent_seconds" gorm:"default:0"`
	Attempts         int `json:"attempts" gorm:"default:0"`
}
