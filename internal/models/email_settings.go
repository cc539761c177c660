package models

import "time"

// EmailSettings is a singleton table: at most one row, created on first
// update. Two concurrent first updates can race into two rows; the store's
// constraints are the only guard and the duplicate is an accepted gap.
type EmailSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	NotificationSignups *bool     `gorm:"default:true" json:"notification_signups"`
	SMTPHost            string    `gorm:"size:255" json:"smtp_host"`
	SMTPPort            int       `gorm:"default:587" json:"smtp_port"`
	SMTPUsername        string    `gorm:"size:255" json:"smtp_username"`
	SMTPPassword        string    `gorm:"size:255" json:"-"`
	FromAddress         string    `gorm:"size:255" json:"from_address"`
	UseTLS              bool      `gorm:"default:false" json:"use_tls"`
	UpdatedBy           string    `gorm:"size:36" json:"updated_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (EmailSettings) TableName() string { return "email_settings" }
