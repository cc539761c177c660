package models

import "time"

// Activity log levels.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// ActivityLog is the append-only audit trail of admin mutations. The
// actor's email is denormalized at write time for display; a failed
// lookup leaves it null rather than failing the write.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // info, warning, error
	Message   string    `gorm:"type:text" json:"message"`
	UserID    *string   `gorm:"size:36" json:"user_id"`
	UserEmail *string   `gorm:"size:255" json:"user_email"`
	Metadata  string    `gorm:"type:text" json:"metadata"` // JSON extra data
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
