package certificates

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"elimu/models"
	courseModels "elimu/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubRenderer struct {
	pdf      []byte
	err      error
	lastHTML string
}

func (r *stubRenderer) Render(_ context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	if r.err != nil {
		return nil, r.err
	}
	return r.pdf, nil
}

type stubStore struct {
	url      string
	publicID string
	err      error
	lastName string
}

func (s *stubStore) Publish(_ context.Context, _ []byte, _, name, _ string) (string, string, error) {
	s.lastName = name
	if s.err != nil {
		return "", "", s.err
	}
	return s.url, s.publicID, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Certificate{},
		&courseModels.CertificateTemplate{},
	))
	return db
}

func seedUserAndCourse(t *testing.T, db *gorm.DB) (*models.User, *courseModels.Course) {
	t.Helper()
	instructor := models.User{
		Username:  "jdoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@elimuspace.com",
		Role:      models.RoleInstructor,
	}
	require.NoError(t, db.Create(&instructor).Error)

	student := models.User{
		Username:  "amina",
		FirstName: "Amina",
		LastName:  "Hassan",
		Email:     "amina@elimuspace.com",
		Role:      models.RoleStudent,
	}
	require.NoError(t, db.Create(&student).Error)

	course := courseModels.Course{
		Title:        "Introduction to Python",
		Slug:         "introduction-to-python",
		InstructorID: instructor.ID,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)

	return &student, &course
}

func newTestService(db *gorm.DB) (*Service, *stubRenderer, *stubStore) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 fake")}
	store := &stubStore{
		url:      "https://res.cloudinary.com/demo/raw/upload/cert.pdf",
		publicID: "elimu_space/certificates/cert_x",
	}
	return NewService(db, renderer, store), renderer, store
}

func TestIssueCreatesCompletedCertificate(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, store := newTestService(db)

	cert, created, err := svc.Issue(context.Background(), user, course, nil)
	require.NoError(t, err)
	assert.True(t, created)

	idPattern := regexp.MustCompile(`^ELIMU-[A-F0-9]{8}-\d+$`)
	assert.Regexp(t, idPattern, cert.CertificateID)
	assert.Regexp(t, regexp.MustCompile(`^[A-F0-9]{12}$`), cert.VerificationCode)

	assert.Equal(t, courseModels.CertificateCompleted, cert.Status)
	assert.Equal(t, "Amina Hassan", cert.StudentName)
	assert.Equal(t, "Introduction to Python", cert.CourseTitle)
	assert.Equal(t, "John Doe", cert.InstructorName)
	assert.Equal(t, store.url, cert.FileURL)
	assert.True(t, cert.IsVerified)

	assert.Equal(t, "cert_"+cert.CertificateID, store.lastName)

	var persisted courseModels.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&persisted).Error)
	assert.Equal(t, cert.CertificateID, persisted.CertificateID)
}

func TestIssueIsIdempotentPerUserAndCourse(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	first, created, err := svc.Issue(context.Background(), user, course, nil)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Issue(context.Background(), user, course, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.CertificateID, second.CertificateID)
	assert.Equal(t, first.VerificationCode, second.VerificationCode)

	var count int64
	db.Model(&courseModels.Certificate{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestIssueStudentNameFallsBackToUsername(t *testing.T) {
	db := setupTestDB(t)
	_, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	user := models.User{Username: "nonames", Email: "nonames@elimuspace.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	cert, _, err := svc.Issue(context.Background(), &user, course, nil)
	require.NoError(t, err)
	assert.Equal(t, "nonames", cert.StudentName)
}

func TestIssueRenderFailureIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, renderer, _ := newTestService(db)
	renderer.err = errors.New("render service unreachable")

	cert, created, err := svc.Issue(context.Background(), user, course, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRenderFailed))
	assert.True(t, created)

	assert.Equal(t, courseModels.CertificateFailed, cert.Status)
	assert.Contains(t, cert.ErrorMessage, "unreachable")
	assert.Empty(t, cert.FileURL)

	// The failed record is persisted, never left in processing
	var persisted courseModels.Certificate
	require.NoError(t, db.Where("certificate_id = ?", cert.CertificateID).First(&persisted).Error)
	assert.Equal(t, courseModels.CertificateFailed, persisted.Status)
}

func TestIssuePublishFailureIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, store := newTestService(db)
	store.err = errors.New("upload rejected")

	cert, _, err := svc.Issue(context.Background(), user, course, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPublishFailed))

	assert.Equal(t, courseModels.CertificateFailed, cert.Status)
	assert.Contains(t, cert.ErrorMessage, "rejected")
	assert.Empty(t, cert.FileURL)
}

func TestIssueUsesDefaultTemplate(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, renderer, _ := newTestService(db)

	require.NoError(t, db.Create(&courseModels.CertificateTemplate{
		Name:         "Modern",
		HTMLTemplate: "<html><head></head><body>Awarded to {student_name} for {course_title}</body></html>",
		IsDefault:    true,
		IsActive:     true,
	}).Error)

	tmpl, err := FindDefaultTemplate(db)
	require.NoError(t, err)
	require.NotNil(t, tmpl)

	_, _, err = svc.Issue(context.Background(), user, course, tmpl)
	require.NoError(t, err)
	assert.Contains(t, renderer.lastHTML, "Awarded to Amina Hassan for Introduction to Python")
}

func TestVerifyReturnsSnapshot(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	cert, _, err := svc.Issue(context.Background(), user, course, nil)
	require.NoError(t, err)

	// Rename the student after issuance; the snapshot must not move
	require.NoError(t, db.Model(user).Update("first_name", "Renamed").Error)

	result, err := svc.Verify(cert.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateID, result.CertificateID)
	assert.Equal(t, "Amina Hassan", result.StudentName)
	assert.Equal(t, "Introduction to Python", result.CourseTitle)
	assert.Equal(t, "John Doe", result.InstructorName)
	assert.Equal(t, courseModels.CertificateCompleted, result.Status)
	assert.True(t, result.IsVerified)
}

func TestVerifyUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	svc, _, _ := newTestService(db)

	_, err := svc.Verify("AAAABBBBCCCC")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// raceTestDB opens the schema without gorm's per-Create transaction so a
// winner row inserted from a create callback stays visible after the losing
// insert fails.
func raceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Certificate{},
		&courseModels.CertificateTemplate{},
	))
	return db
}

func TestIssueResolvesCreateRaceToWinner(t *testing.T) {
	db := raceTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	winnerID := fmt.Sprintf("ELIMU-0D15EA5E-%d", course.ID)

	// A concurrent issue wins the (user, course) insert between the
	// pre-fetch and Create
	var raced bool
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("issue_race_winner", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "certificates" {
			return
		}
		raced = true
		db.Exec(
			`INSERT INTO certificates (created_at, updated_at, certificate_id, user_id, course_id,
				student_name, course_title, instructor_name, completion_date,
				file_url, storage_public_id, status, error_message, verification_code, is_verified)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, '', '', ?, '', ?, ?)`,
			time.Now(), time.Now(), winnerID, user.ID, course.ID,
			"Amina Hassan", course.Title, "John Doe", time.Now(),
			courseModels.CertificateCompleted, "0D15EA5EC0DE", true,
		)
	}))

	cert, created, err := svc.Issue(context.Background(), user, course, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winnerID, cert.CertificateID)
	assert.Equal(t, "0D15EA5EC0DE", cert.VerificationCode)

	var count int64
	db.Model(&courseModels.Certificate{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestIssueFailsLoudlyOnIdentifierCollision(t *testing.T) {
	db := raceTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	// Someone else's certificate already carries the generated verification
	// code, so the conflict is not explained by a (user, course) winner
	var raced bool
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("code_collision", func(tx *gorm.DB) {
		cert, ok := tx.Statement.Dest.(*courseModels.Certificate)
		if !ok || raced {
			return
		}
		raced = true
		db.Exec(
			`INSERT INTO certificates (created_at, updated_at, certificate_id, user_id, course_id,
				student_name, course_title, instructor_name, completion_date,
				file_url, storage_public_id, status, error_message, verification_code, is_verified)
			VALUES (?, ?, 'ELIMU-FFFFFFFF-999', 9999, 9999, 'Other Student', 'Other Course', 'Other Instructor', ?,
				'', '', ?, '', ?, ?)`,
			time.Now(), time.Now(), time.Now(),
			courseModels.CertificateCompleted, cert.VerificationCode, true,
		)
	}))

	cert, created, err := svc.Issue(context.Background(), user, course, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision")
	assert.Nil(t, cert)
	assert.False(t, created)
}

func TestIssueFinalSaveFailureIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	user, course := seedUserAndCourse(t, db)
	svc, _, _ := newTestService(db)

	// Only the completed-status save fails; the failed-status downgrade goes
	// through
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("completed_save_fails", func(tx *gorm.DB) {
		if cert, ok := tx.Statement.Dest.(*courseModels.Certificate); ok && cert.Status == courseModels.CertificateCompleted {
			tx.AddError(errors.New("disk full"))
		}
	}))

	cert, created, err := svc.Issue(context.Background(), user, course, nil)
	require.Error(t, err)
	assert.True(t, created)
	assert.Equal(t, courseModels.CertificateFailed, cert.Status)
	assert.Contains(t, cert.ErrorMessage, "disk full")

	var persisted courseModels.Certificate
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&persisted).Error)
	assert.Equal(t, courseModels.CertificateFailed, persisted.Status)
}

func TestRandomHexLengthAndAlphabet(t *testing.T) {
	seen := make(map[string]bool)
	pattern := regexp.MustCompile(`^[A-F0-9]{12}$`)
	for i := 0; i < 100; i++ {
		code := randomHex(12)
		assert.Regexp(t, pattern, code)
		assert.False(t, seen[code], "verification codes must not repeat")
		seen[code] = true
	}
}
