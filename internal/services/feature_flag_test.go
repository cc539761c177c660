package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/forgenova/console/internal/models"
)

func TestFeatureFlagList_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeatureFlagService(db, NewActivityLogService(db))

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := db.Create(&models.FeatureFlag{Name: name}).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	flags, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, flag := range flags {
		if flag.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], flag.Name)
		}
	}
}

func TestFeatureFlagUpdate_TogglesAndLogs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeatureFlagService(db, NewActivityLogService(db))

	flag := &models.FeatureFlag{Name: "dark_mode", Enabled: false}
	if err := db.Create(flag).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	updated, err := svc.Update(flag.ID, true, "u1")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Enabled {
		t.Errorf("expected flag enabled")
	}
	if updated.UpdatedBy != "u1" {
		t.Errorf("expected updated_by u1, got %s", updated.UpdatedBy)
	}

	if n := countActivityLogs(t, db); n != 1 {
		t.Fatalf("expected exactly 1 activity log, got %d", n)
	}
	log := lastActivityLog(t, db)
	if !strings.Contains(log.Message, "dark_mode") || !strings.Contains(log.Message, "enabled") {
		t.Errorf("expected message with flag name and state, got %q", log.Message)
	}
	if log.UserID == nil || *log.UserID != "u1" {
		t.Errorf("expected actor u1 on log row")
	}
}

func TestFeatureFlagUpdate_DisabledMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeatureFlagService(db, NewActivityLogService(db))

	flag := &models.FeatureFlag{Name: "beta_workspaces", Enabled: true}
	if err := db.Create(flag).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.Update(flag.ID, false, "u1"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	log := lastActivityLog(t, db)
	if !strings.Contains(log.Message, "disabled") {
		t.Errorf("expected disabled in message, got %q", log.Message)
	}
}

func TestFeatureFlagUpdate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeatureFlagService(db, NewActivityLogService(db))

	if _, err := svc.Update("missing", true, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if n := countActivityLogs(t, db); n != 0 {
		t.Errorf("expected no activity log on failure, got %d", n)
	}
}
