package certificates

import (
	"testing"
	"time"

	courseModels "elimu/models/course"

	"github.com/stretchr/testify/assert"
)

func sampleCertificate() *courseModels.Certificate {
	return &courseModels.Certificate{
		CertificateID:    "ELIMU-A1B2C3D4-7",
		StudentName:      "Amina Hassan",
		CourseTitle:      "Introduction to Python",
		InstructorName:   "John Doe",
		CompletionDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		VerificationCode: "A1B2C3D4E5F6",
	}
}

func TestBuildHTMLSubstitutesPlaceholders(t *testing.T) {
	tmpl := &courseModels.CertificateTemplate{
		HTMLTemplate: "<html><head></head><body>{student_name}|{course_title}|{instructor_name}|{completion_date}|{certificate_id}|{verification_code}</body></html>",
	}

	html := buildHTML(sampleCertificate(), tmpl)

	assert.Contains(t, html, "Amina Hassan")
	assert.Contains(t, html, "Introduction to Python")
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "March 15, 2026")
	assert.Contains(t, html, "ELIMU-A1B2C3D4-7")
	assert.Contains(t, html, "A1B2C3D4E5F6")
	assert.NotContains(t, html, "{student_name}")
}

func TestBuildHTMLInjectsCSS(t *testing.T) {
	tmpl := &courseModels.CertificateTemplate{
		HTMLTemplate: "<html><head></head><body>{student_name}</body></html>",
		CSSStyles:    ".certificate { border: 1px solid gold; }",
	}

	html := buildHTML(sampleCertificate(), tmpl)
	assert.Contains(t, html, "<style>.certificate { border: 1px solid gold; }</style></head>")
}

func TestBuildHTMLFallbackLayout(t *testing.T) {
	html := buildHTML(sampleCertificate(), nil)

	assert.Contains(t, html, "CERTIFICATE OF COMPLETION")
	assert.Contains(t, html, "Elimu Space")
	assert.Contains(t, html, "Amina Hassan")
	assert.Contains(t, html, "Introduction to Python")
	assert.Contains(t, html, "Certificate ID: ELIMU-A1B2C3D4-7")
	assert.Contains(t, html, "A1B2C3D4E5F6")
	assert.Contains(t, html, "A4 landscape")
}
