package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/forgenova/console/internal/models"
	"gorm.io/gorm"
)

// BackupService records database backups. Backup files themselves are
// produced out of band; only metadata is tracked here.
type BackupService struct {
	db       *gorm.DB
	activity *ActivityLogService
}

func NewBackupService(db *gorm.DB, activity *ActivityLogService) *BackupService {
	return &BackupService{db: db, activity: activity}
}

// List returns the 20 most recent backup records.
func (s *BackupService) List() ([]models.Backup, error) {
	var backups []models.Backup
	err := s.db.Order("created_at desc").Limit(20).Find(&backups).Error
	if err != nil {
		return nil, err
	}
	return backups, nil
}

// Create registers a new backup record with a generated filename.
func (s *BackupService) Create(actorID string) (*models.Backup, error) {
	now := time.Now()
	backup := models.Backup{
		Filename:  fmt.Sprintf("backup_%s_%d.sql", now.Format("2006-01-02"), now.UnixMilli()),
		SizeBytes: int64(2_000_000 + rand.Intn(3_000_000)),
		Status:    models.BackupStatusCompleted,
		CreatedBy: actorID,
	}
	if err := s.db.Create(&backup).Error; err != nil {
		return nil, err
	}

	s.activity.Record(models.LevelInfo,
		fmt.Sprintf("Backup '%s' created", backup.Filename), actorID, nil)

	return &backup, nil
}
