package certificates

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"elimu/models"
	courseModels "elimu/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageFolder is where published certificate documents live on the blob host.
const StorageFolder = "elimu_space/certificates"

// Issue failure kinds. The failed certificate record is persisted either way;
// callers inspect both the returned record and the error.
var (
	ErrRenderFailed  = errors.New("certificate render failed")
	ErrPublishFailed = errors.New("certificate publish failed")
)

// Service issues and verifies course completion certificates. One instance is
// constructed at startup with its renderer and blob store collaborators.
type Service struct {
	db       *gorm.DB
	renderer Renderer
	store    BlobStore
}

func NewService(db *gorm.DB, renderer Renderer, store BlobStore) *Service {
	return &Service{db: db, renderer: renderer, store: store}
}

// randomHex returns n uppercase hex characters drawn from a fresh UUID.
func randomHex(n int) string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:n]
}

// Issue creates the certificate for (user, course), renders it and publishes
// the document. A certificate that already exists for the pair is returned
// unchanged with created=false; callers must have verified course completion
// beforehand. The returned record always carries a terminal status: completed,
// or failed with the error also returned.
func (s *Service) Issue(ctx context.Context, user *models.User, course *courseModels.Course, tmpl *courseModels.CertificateTemplate) (*courseModels.Certificate, bool, error) {
	var existing courseModels.Certificate
	err := s.db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	instructorName := ""
	var instructor models.User
	if err := s.db.First(&instructor, course.InstructorID).Error; err == nil {
		instructorName = instructor.FullName()
	}

	cert := &courseModels.Certificate{
		CertificateID:    fmt.Sprintf("ELIMU-%s-%d", randomHex(8), course.ID),
		UserID:           user.ID,
		CourseID:         course.ID,
		StudentName:      user.FullName(),
		CourseTitle:      course.Title,
		InstructorName:   instructorName,
		CompletionDate:   time.Now(),
		VerificationCode: randomHex(12),
		Status:           courseModels.CertificateProcessing,
		IsVerified:       true,
	}

	if err := s.db.Create(cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the (user, course) race: the winner's record is the
			// certificate. Any other uniqueness violation (certificate_id or
			// verification_code collision) fails loudly instead of retrying.
			var winner courseModels.Certificate
			if ferr := s.db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&winner).Error; ferr == nil {
				return &winner, false, nil
			}
			return nil, false, fmt.Errorf("certificate identifier collision for course %d: %w", course.ID, err)
		}
		return nil, false, err
	}

	pdf, err := s.renderer.Render(ctx, buildHTML(cert, tmpl))
	if err != nil {
		s.markFailed(cert, err)
		return cert, true, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	fileURL, publicID, err := s.store.Publish(ctx, pdf, StorageFolder, "cert_"+cert.CertificateID, "pdf")
	if err != nil {
		s.markFailed(cert, err)
		return cert, true, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	cert.FileURL = fileURL
	cert.StoragePublicID = publicID
	cert.Status = courseModels.CertificateCompleted
	if err := s.db.Save(cert).Error; err != nil {
		// The row must not stay in processing behind a successful publish
		s.markFailed(cert, fmt.Errorf("persisting completed certificate: %v", err))
		return cert, true, err
	}
	return cert, true, nil
}

// markFailed records a terminal failed status with the captured error text.
func (s *Service) markFailed(cert *courseModels.Certificate, cause error) {
	cert.Status = courseModels.CertificateFailed
	cert.ErrorMessage = cause.Error()
	if err := s.db.Save(cert).Error; err != nil {
		log.Printf("Failed to persist failed certificate %s: %v", cert.CertificateID, err)
	}
}

// VerifyResult is the public-safe projection returned for a verification
// code. It exposes no internal identifiers beyond the certificate id and the
// code itself.
type VerifyResult struct {
	CertificateID    string    `json:"certificate_id"`
	VerificationCode string    `json:"verification_code"`
	StudentName      string    `json:"student_name"`
	CourseTitle      string    `json:"course_title"`
	InstructorName   string    `json:"instructor_name"`
	CompletionDate   time.Time `json:"completion_date"`
	Status           string    `json:"status"`
	IsVerified       bool      `json:"is_verified"`
	IssuedAt         time.Time `json:"issued_at"`
}

// Verify looks up a certificate by its public verification code. Returns
// gorm.ErrRecordNotFound for unknown codes. No mutation.
func (s *Service) Verify(code string) (*VerifyResult, error) {
	var cert courseModels.Certificate
	if err := s.db.Where("verification_code = ?", code).First(&cert).Error; err != nil {
		return nil, err
	}

	return &VerifyResult{
		CertificateID:    cert.CertificateID,
		VerificationCode: cert.VerificationCode,
		StudentName:      cert.StudentName,
		CourseTitle:      cert.CourseTitle,
		InstructorName:   cert.InstructorName,
		CompletionDate:   cert.CompletionDate,
		Status:           cert.Status,
		IsVerified:       cert.IsVerified,
		IssuedAt:         cert.CreatedAt,
	}, nil
}
