package service

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"github.com/duetly/backend/internal/models"
)

type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	adminEmail   string
}

func readEmailSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	// Fall back to env vars outside Docker.
	return os.Getenv(strings.ToUpper(name))
}

func NewEmailService() IEmailService {
	return &EmailService{
		smtpHost:     readEmailSecret("smtp_host"),
		smtpPort:     readEmailSecret("smtp_port"),
		smtpUsername: readEmailSecret("smtp_username"),
		smtpPassword: readEmailSecret("smtp_password"),
		fromEmail:    readEmailSecret("email_from"),
		fromName:     readEmailSecret("email_from_name"),
		adminEmail:   readEmailSecret("admin_email"),
	}
}

// SendFeedbackNotification mails a new feedback submission to the admin
// inbox.
func (s *EmailService) SendFeedbackNotification(feedback *models.Feedback, user *models.User) error {
	toEmail := s.adminEmail
	if toEmail == "" {
		toEmail = s.fromEmail
	}

	subject := fmt.Sprintf("[Duetly] New feedback from %s (%d/5)", feedback.Subdomain, feedback.Rating)

	var body strings.Builder
	fmt.Fprintf(&body, "Subdomain: %s\n", feedback.Subdomain)
	if user != nil {
		fmt.Fprintf(&body, "Submitted by: %s <%s>\n", user.Name, user.Email)
	}
	fmt.Fprintf(&body, "Contact: %s\n", feedback.ContactEmail)
	fmt.Fprintf(&body, "Rating: %d/5 (ease %d, design %d, performance %d)\n",
		feedback.Rating, feedback.EaseOfUse, feedback.DesignRating, feedback.Performance)
	fmt.Fprintf(&body, "Liked: %s\n", feedback.LikedFeatures)
	fmt.Fprintf(&body, "Improvements: %s\n", feedback.Improvements)
	if feedback.Bugs != "" {
		fmt.Fprintf(&body, "Bugs: %s\n", feedback.Bugs)
	}
	if feedback.Comments != "" {
		fmt.Fprintf(&body, "Comments: %s\n", feedback.Comments)
	}

	return s.SendEmail(toEmail, subject, body.String())
}

// SendEmail sends a plain-text email over SMTP. A service with no SMTP host
// configured silently drops mail, which keeps development setups simple.
func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" {
		return nil
	}

	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body)

	addr := s.smtpHost + ":" + s.smtpPort
	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	return smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg))
}
