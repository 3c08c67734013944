package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordLessonCompletionProgress(t *testing.T) {
	e := &Enrollment{Status: EnrollmentActive}

	completed := e.RecordLessonCompletion(1, 4)
	assert.False(t, completed)
	assert.InDelta(t, 25.0, e.Progress, 0.001)
	assert.Equal(t, EnrollmentActive, e.Status)

	e.RecordLessonCompletion(2, 4)
	e.RecordLessonCompletion(3, 4)
	assert.InDelta(t, 75.0, e.Progress, 0.001)

	completed = e.RecordLessonCompletion(4, 4)
	assert.True(t, completed)
	assert.InDelta(t, 100.0, e.Progress, 0.001)
	assert.Equal(t, EnrollmentCompleted, e.Status)
	assert.NotNil(t, e.CompletedAt)
}

func TestRecordLessonCompletionIsIdempotent(t *testing.T) {
	e := &Enrollment{Status: EnrollmentActive}

	e.RecordLessonCompletion(1, 2)
	completed := e.RecordLessonCompletion(1, 2)
	assert.False(t, completed)
	assert.Len(t, e.CompletedLessons, 1)
	assert.InDelta(t, 50.0, e.Progress, 0.001)
}

func TestRecordLessonCompletionTransitionsOnce(t *testing.T) {
	e := &Enrollment{Status: EnrollmentActive}

	assert.True(t, e.RecordLessonCompletion(1, 1))
	// Extra lessons published later must not re-trigger the transition
	assert.False(t, e.RecordLessonCompletion(2, 2))
	assert.Equal(t, EnrollmentCompleted, e.Status)
}

func TestRecordLessonCompletionZeroLessons(t *testing.T) {
	e := &Enrollment{Status: EnrollmentActive}

	completed := e.RecordLessonCompletion(1, 0)
	assert.False(t, completed)
	assert.Zero(t, e.Progress)
	assert.Equal(t, EnrollmentActive, e.Status)
}

func TestHasCompletedLesson(t *testing.T) {
	e := &Enrollment{CompletedLessons: []uint{3, 7}}

	assert.True(t, e.HasCompletedLesson(3))
	assert.True(t, e.HasCompletedLesson(7))
	assert.False(t, e.HasCompletedLesson(5))
}
