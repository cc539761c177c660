package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BackupStatusCompleted = "completed"
	BackupStatusFailed    = "failed"
)

// Backup is a record of a backup run. The current implementation records
// a placeholder filename/size only; a real export engine is future work.
type Backup struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	Status    string    `gorm:"size:20;default:completed" json:"status"`
	CreatedBy string    `gorm:"size:36" json:"created_by"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Backup) TableName() string { return "system_backups" }

func (b *Backup) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
