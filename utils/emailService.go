package utils

import (
	"fmt"
	"log"

	"learnhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers a transactional email through SendGrid. Every caller
// treats delivery as best-effort: failures are logged and never surfaced.
func sendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		return fmt.Errorf("sendgrid api key not configured")
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, userName string) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to LearnHub</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">Your account is ready. Browse the catalog and enroll in your first course to start your learning streak.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for joining LearnHub.</p>
				</div>
			</body>
		</html>
	`, userName)

	if err := sendEmail(userName, email, "Welcome to LearnHub", body); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// SendEnrollmentEmail notifies a user that their enrollment is active
func SendEnrollmentEmail(email, userName, courseTitle string) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">You are now enrolled in <strong>%s</strong>. Your progress starts at 0%% - complete a module to get going.</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	if err := sendEmail(userName, email, "You are enrolled: "+courseTitle, body); err != nil {
		log.Printf("Error sending enrollment email to %s: %v", email, err)
	}
}

// SendCompletionEmail congratulates a user on finishing a course
func SendCompletionEmail(email, userName, courseTitle string) {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #4CAF50; text-align: center;">Course Completed!</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 14px; color: #555555;">Congratulations - you completed <strong>%s</strong>. Keep your streak alive with your next course.</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	if err := sendEmail(userName, email, "Congratulations on completing "+courseTitle, body); err != nil {
		log.Printf("Error sending completion email to %s: %v", email, err)
	}
}
