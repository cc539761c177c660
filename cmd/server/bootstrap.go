package main

import (
	"github.com/forgenova/console/internal/config"
	"github.com/forgenova/console/internal/handlers"
	"github.com/forgenova/console/internal/identity"
	"github.com/forgenova/console/internal/models"
	"github.com/forgenova/console/internal/services"
	"github.com/forgenova/console/internal/utils"
	"github.com/forgenova/console/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	guard     *services.AuthGuard
	scheduler *services.SchedulerService
	taskQueue services.TaskQueue
	worker    *services.Worker

	authHandler          *handlers.AuthHandler
	settingsHandler      *handlers.SettingsHandler
	flagHandler          *handlers.FeatureFlagHandler
	roleHandler          *handlers.RoleHandler
	emailSettingsHandler *handlers.EmailSettingsHandler
	apiKeyHandler        *handlers.APIKeyHandler
	logHandler           *handlers.LogHandler
	workspaceHandler     *handlers.WorkspaceHandler
	templateHandler      *handlers.TemplateHandler
	backupHandler        *handlers.BackupHandler
	userHandler          *handlers.UserHandler
	notificationHandler  *handlers.NotificationHandler
	statsHandler         *handlers.StatsHandler
	healthHandler        *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	db := models.GetDB()

	activity := services.NewActivityLogService(db)
	email := services.NewEmailService(db, &cfg.SMTP)
	provider := identity.NewService(db, email, cfg.JWT.ExpireHour)
	guard := services.NewAuthGuard(db, provider)

	settings := services.NewSettingsService(db, activity)
	flags := services.NewFeatureFlagService(db, activity)
	roles := services.NewRoleService(db, activity)
	emailSettings := services.NewEmailSettingsService(db, activity)
	apiKeys := services.NewAPIKeyService(db, activity)
	workspaces := services.NewWorkspaceService(db, activity)
	templates := services.NewTemplateService(db, activity)
	backups := services.NewBackupService(db, activity)
	users := services.NewUserService(db, provider, activity)
	stats := services.NewStatsService(db)

	// Task queue: asynq when Redis is enabled, sync goroutine otherwise
	taskQueue := services.InitTaskQueue(cfg)
	notification := services.NewNotificationService(db, email, taskQueue, &cfg.SMTP)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notification.ProcessSignup)
	}

	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notification.ProcessSignup)
			worker.Start()
		}
	}

	scheduler := services.NewSchedulerService(db, backups, settings, activity, cfg.Backup.Schedule)
	if cfg.Backup.Schedule != "" {
		scheduler.Start()
	}

	return &appServices{
		guard:     guard,
		scheduler: scheduler,
		taskQueue: taskQueue,
		worker:    worker,

		authHandler:          handlers.NewAuthHandler(provider, guard, activity),
		settingsHandler:      handlers.NewSettingsHandler(settings),
		flagHandler:          handlers.NewFeatureFlagHandler(flags),
		roleHandler:          handlers.NewRoleHandler(roles),
		emailSettingsHandler: handlers.NewEmailSettingsHandler(emailSettings),
		apiKeyHandler:        handlers.NewAPIKeyHandler(apiKeys),
		logHandler:           handlers.NewLogHandler(activity),
		workspaceHandler:     handlers.NewWorkspaceHandler(workspaces),
		templateHandler:      handlers.NewTemplateHandler(templates),
		backupHandler:        handlers.NewBackupHandler(backups),
		userHandler:          handlers.NewUserHandler(users, notification),
		notificationHandler:  handlers.NewNotificationHandler(notification),
		statsHandler:         handlers.NewStatsHandler(stats),
		healthHandler:        handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.scheduler.Stop()
	logger.Info().Msg("Scheduler stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
