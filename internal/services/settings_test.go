package services

import (
	"strings"
	"testing"

	"github.com/forgenova/console/internal/models"
)

func TestSettingsUpdate_InsertThenOverwrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db, NewActivityLogService(db))

	if _, err := svc.Update("maintenance_mode", "false", "u1"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := svc.Update("maintenance_mode", "true", "u2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	var rows []models.SystemSetting
	if err := db.Where("key = ?", "maintenance_mode").Find(&rows).Error; err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected single row after upsert, got %d", len(rows))
	}
	if rows[0].Value != "true" {
		t.Errorf("expected last write to win, got %s", rows[0].Value)
	}
	if rows[0].UpdatedBy != "u2" {
		t.Errorf("expected updated_by u2, got %s", rows[0].UpdatedBy)
	}
}

func TestSettingsGetAll_FoldsToMap(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db, NewActivityLogService(db))

	seed := map[string]string{"signup_enabled": "true", "log_retention_days": "30"}
	for k, v := range seed {
		if _, err := svc.Update(k, v, "u1"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	settings, err := svc.GetAll()
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	for k, v := range seed {
		if settings[k] != v {
			t.Errorf("expected %s=%s, got %s", k, v, settings[k])
		}
	}
}

func TestSettingsUpdate_WritesOneActivityLog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db, NewActivityLogService(db))

	if _, err := svc.Update("signup_enabled", "false", "u1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if n := countActivityLogs(t, db); n != 1 {
		t.Fatalf("expected 1 activity log, got %d", n)
	}
	log := lastActivityLog(t, db)
	if !strings.Contains(log.Message, "signup_enabled") {
		t.Errorf("expected key in message, got %q", log.Message)
	}
}

func TestSettingsGet_Fallback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db, NewActivityLogService(db))

	if got := svc.Get("missing_key", "default"); got != "default" {
		t.Errorf("expected fallback, got %s", got)
	}
}
