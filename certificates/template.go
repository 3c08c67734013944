package certificates

import (
	"fmt"
	"strings"

	courseModels "elimu/models/course"

	"gorm.io/gorm"
)

// FindDefaultTemplate returns the first active default template, or nil when
// none is configured. Callers resolve the template explicitly and pass it
// into Service.Issue; the issuance path itself never queries for templates.
func FindDefaultTemplate(db *gorm.DB) (*courseModels.CertificateTemplate, error) {
	var tmpl courseModels.CertificateTemplate
	err := db.Where("is_default = ? AND is_active = ?", true, true).
		Order("id asc").First(&tmpl).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tmpl, nil
}

// buildHTML produces the certificate document markup. A custom template gets
// plain placeholder substitution of the six certificate fields; templates are
// admin-managed input and are substituted as-is.
func buildHTML(cert *courseModels.Certificate, tmpl *courseModels.CertificateTemplate) string {
	if tmpl == nil {
		return fallbackHTML(cert)
	}

	replacer := strings.NewReplacer(
		"{student_name}", cert.StudentName,
		"{course_title}", cert.CourseTitle,
		"{instructor_name}", cert.InstructorName,
		"{completion_date}", cert.CompletionDate.Format("January 2, 2006"),
		"{certificate_id}", cert.CertificateID,
		"{verification_code}", cert.VerificationCode,
	)
	html := replacer.Replace(tmpl.HTMLTemplate)

	if tmpl.CSSStyles != "" {
		html = strings.Replace(html, "</head>", "<style>"+tmpl.CSSStyles+"</style></head>", 1)
	}
	return html
}

// fallbackHTML is the built-in A4 landscape layout used when no active
// default template is configured.
func fallbackHTML(cert *courseModels.Certificate) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		@page { size: A4 landscape; margin: 0; }
		body {
			margin: 0; padding: 0;
			font-family: 'Georgia', serif;
			background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
			height: 100vh; display: flex; align-items: center; justify-content: center;
		}
		.certificate {
			background: white; width: 90%%; max-width: 1000px; padding: 60px;
			border: 20px solid #F97316; border-radius: 20px; text-align: center;
			box-shadow: 0 20px 60px rgba(0,0,0,0.3);
		}
		.title { font-size: 48px; color: #0D3B66; margin: 20px 0; font-weight: bold; }
		.subtitle { font-size: 24px; color: #666; margin-bottom: 40px; }
		.student-name { font-size: 56px; color: #F97316; font-weight: bold; margin: 30px 0; text-transform: uppercase; }
		.course-title { font-size: 32px; color: #0D3B66; margin: 20px 0; font-style: italic; }
		.completion-text { font-size: 20px; color: #666; margin: 30px 0; line-height: 1.6; }
		.signature-section { display: flex; justify-content: space-around; margin-top: 60px; }
		.signature { text-align: center; }
		.signature-line { border-top: 2px solid #333; width: 200px; margin: 10px auto; }
		.signature-name { font-size: 18px; font-weight: bold; margin-top: 10px; }
		.signature-title { font-size: 14px; color: #666; }
		.footer { margin-top: 40px; font-size: 12px; color: #999; }
		.certificate-id { font-size: 14px; color: #999; margin-top: 20px; }
	</style>
</head>
<body>
	<div class="certificate">
		<div class="title">CERTIFICATE OF COMPLETION</div>
		<div class="subtitle">This is to certify that</div>

		<div class="student-name">%s</div>

		<div class="completion-text">has successfully completed the course</div>

		<div class="course-title">%s</div>

		<div class="completion-text">Awarded on %s</div>

		<div class="signature-section">
			<div class="signature">
				<div class="signature-line"></div>
				<div class="signature-name">%s</div>
				<div class="signature-title">Course Instructor</div>
			</div>
			<div class="signature">
				<div class="signature-line"></div>
				<div class="signature-name">Elimu Space</div>
				<div class="signature-title">Platform Director</div>
			</div>
		</div>

		<div class="footer">
			<div>Elimu Space - Empowering Tanzanian Youth</div>
			<div class="certificate-id">Certificate ID: %s</div>
			<div>Verification Code: %s</div>
		</div>
	</div>
</body>
</html>`,
		cert.StudentName,
		cert.CourseTitle,
		cert.CompletionDate.Format("January 2, 2006"),
		cert.InstructorName,
		cert.CertificateID,
		cert.VerificationCode,
	)
}
