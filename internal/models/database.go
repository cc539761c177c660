package models

import (
	"fmt"

	"github.com/forgenova/console/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&Profile{},
		&SystemSetting{},
		&FeatureFlag{},
		&EmailSettings{},
		&APIKey{},
		&ActivityLog{},
		&Workspace{},
		&WorkspaceMember{},
		&Template{},
		&TemplateUsage{},
		&Backup{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates baseline rows if they do not exist yet.
func SeedDefaultData() error {
	defaultSettings := []SystemSetting{
		{Key: "maintenance_mode", Value: "false"},
		{Key: "signup_enabled", Value: "true"},
		{Key: "log_retention_days", Value: "90"},
	}
	for _, s := range defaultSettings {
		var count int64
		DB.Model(&SystemSetting{}).Where(map[string]interface{}{"key": s.Key}).Count(&count)
		if count == 0 {
			if err := DB.Create(&s).Error; err != nil {
				return err
			}
		}
	}

	defaultFlags := []FeatureFlag{
		{Name: "dark_mode", Enabled: false},
		{Name: "beta_workspaces", Enabled: false},
		{Name: "template_sharing", Enabled: true},
	}
	for _, f := range defaultFlags {
		var count int64
		DB.Model(&FeatureFlag{}).Where("name = ?", f.Name).Count(&count)
		if count == 0 {
			if err := DB.Create(&f).Error; err != nil {
				return err
			}
		}
	}

	// The four built-in templates shown on the admin templates page.
	defaultTemplates := []Template{
		{Name: "Maintenance Log", Description: "Track equipment maintenance tasks and schedules"},
		{Name: "Production QC", Description: "Quality control checklist for production runs"},
		{Name: "Inventory Count", Description: "Periodic stock counting worksheet"},
		{Name: "Safety Audit", Description: "Workplace safety inspection form"},
	}
	for _, t := range defaultTemplates {
		var count int64
		DB.Model(&Template{}).Where("name = ?", t.Name).Count(&count)
		if count == 0 {
			if err := DB.Create(&t).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
