package utils

import (
	"fmt"
	"log"

	"elimu/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML email through SendGrid.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	from := mail.NewEmail("Elimu Space", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the platform layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0D3B66; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0D3B66; line-height: 1.6; }
			.content h2 { color: #0D3B66; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #FFF4EC; padding: 15px; border-radius: 4px; border-left: 4px solid #F97316; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ELIMU SPACE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Elimu Space - Empowering Tanzanian Youth
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail notifies a freshly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Elimu Space"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Elimu Space</strong>! Your account has been created.</p>
		<p>Browse the course catalog, enroll, and start learning at your own pace.</p>
	`, name)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Course Enrollment Confirmation"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Complete all lessons to earn your certificate.</p>
	`, name, courseTitle)

	go SendEmail(email, name, subject, getEmailTemplate("Enrollment Successful", body))
}

// SendCertificateEmail notifies a student their certificate is ready
func SendCertificateEmail(email, name, courseTitle, certificateID, fileURL string) {
	subject := "Your Course Completion Certificate"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">
			<p>Certificate ID: <strong>%s</strong></p>
			<p><a href="%s">Download your certificate</a></p>
		</div>
		<p>Anyone can confirm this certificate with your verification code on the platform.</p>
	`, name, courseTitle, certificateID, fileURL)

	go SendEmail(email, name, subject, getEmailTemplate("Certificate of Completion", body))
}
