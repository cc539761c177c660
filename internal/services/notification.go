package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgenova/console/internal/config"
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/pkg/logger"
	"gorm.io/gorm"
)

// NotificationService delivers admin notifications about new signups.
// Delivery goes through the task queue; ProcessSignup is the worker
// side that actually sends the mail.
type NotificationService struct {
	db    *gorm.DB
	email *EmailService
	queue TaskQueue
	cfg   *config.SMTPConfig
}

func NewNotificationService(db *gorm.DB, email *EmailService, queue TaskQueue, cfg *config.SMTPConfig) *NotificationService {
	return &NotificationService{db: db, email: email, queue: queue, cfg: cfg}
}

// NotifySignup enqueues a signup notification. Failures only log;
// signup itself never fails because of notification problems.
func (s *NotificationService) NotifySignup(profile *models.Profile) {
	task := &SignupTask{
		UserID:   profile.UserID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Company:  profile.Company,
		Position: profile.Position,
	}
	if err := s.queue.Enqueue(task); err != nil {
		logger.Warn().Err(err).Str("email", profile.Email).Msg("failed to enqueue signup notification")
	}
}

// ProcessSignup sends the admin notification email for one signup.
// Skips silently when signup notifications are disabled or no admin
// recipient is configured.
func (s *NotificationService) ProcessSignup(ctx context.Context, task *SignupTask) error {
	if !s.signupNotificationsEnabled() {
		return nil
	}

	recipients := s.adminRecipients()
	if len(recipients) == 0 {
		logger.Infof("[Notification] No admin recipients configured, skipping signup notification")
		return nil
	}

	subject := fmt.Sprintf("New signup: %s", task.Email)
	body := s.buildSignupBody(task)

	return s.email.Send(recipients, subject, body)
}

func (s *NotificationService) signupNotificationsEnabled() bool {
	var settings models.EmailSettings
	if err := s.db.First(&settings).Error; err != nil {
		// No stored row means the default applies
		return true
	}
	return settings.NotificationSignups == nil || *settings.NotificationSignups
}

func (s *NotificationService) adminRecipients() []string {
	if s.cfg.AdminTo != "" {
		return strings.Split(s.cfg.AdminTo, ",")
	}

	var admins []models.Profile
	err := s.db.Where("admin_role IS NOT NULL OR role = ?", models.RoleAdmin).Find(&admins).Error
	if err != nil {
		return nil
	}

	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.Email)
	}
	return recipients
}

func (s *NotificationService) buildSignupBody(task *SignupTask) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>New User Signup</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")

	rows := []struct{ label, value string }{
		{"Name", task.FullName},
		{"Email", task.Email},
		{"Company", task.Company},
		{"Position", task.Position},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")

	sb.WriteString("<p>The account is pending activation in the admin panel.</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}
