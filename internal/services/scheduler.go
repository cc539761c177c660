package services

import (
	"strconv"

	"github.com/forgenova/console/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SchedulerService runs the nightly maintenance jobs: an automatic
// backup record and activity log retention cleanup.
type SchedulerService struct {
	db       *gorm.DB
	backups  *BackupService
	settings *SettingsService
	activity *ActivityLogService
	schedule string
	cron     *cron.Cron
}

func NewSchedulerService(db *gorm.DB, backups *BackupService, settings *SettingsService, activity *ActivityLogService, schedule string) *SchedulerService {
	return &SchedulerService{
		db:       db,
		backups:  backups,
		settings: settings,
		activity: activity,
		schedule: schedule,
	}
}

func (s *SchedulerService) Start() {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(s.schedule, s.runNightly); err != nil {
		logger.Errorf("[Scheduler] Failed to add nightly job: %v", err)
		return
	}

	s.cron.Start()
	logger.Infof("[Scheduler] Started (schedule: %s)", s.schedule)
}

func (s *SchedulerService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *SchedulerService) runNightly() {
	if _, err := s.backups.Create("system"); err != nil {
		logger.Errorf("[Scheduler] Nightly backup failed: %v", err)
	}

	retention := 90
	if v := s.settings.Get("log_retention_days", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			retention = n
		}
	}

	removed, err := s.activity.Cleanup(retention)
	if err != nil {
		logger.Errorf("[Scheduler] Log cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		logger.Infof("[Scheduler] Removed %d activity log entries older than %d days", removed, retention)
	}
}
