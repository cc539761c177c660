package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/forgenova/console/internal/models"
)

func TestWorkspaceDelete_LogsNameBeforeRemoval(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkspaceService(db, NewActivityLogService(db))

	ws := &models.Workspace{Name: "Night Shift"}
	if err := db.Create(ws).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := svc.Delete(ws.ID, "actor-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var n int64
	db.Model(&models.Workspace{}).Count(&n)
	if n != 0 {
		t.Errorf("workspace not removed")
	}

	log := lastActivityLog(t, db)
	if !strings.Contains(log.Message, "Night Shift") {
		t.Errorf("expected workspace name in log, got %q", log.Message)
	}
	if log.Level != models.LevelWarning {
		t.Errorf("expected warning level for delete, got %s", log.Level)
	}
}

func TestWorkspaceDelete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkspaceService(db, NewActivityLogService(db))

	if err := svc.Delete("missing", "actor-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkspaceList_PreloadsMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkspaceService(db, NewActivityLogService(db))

	member := createProfile(t, db, &models.Profile{
		Email: "member@example.com", FullName: "Member", Status: models.StatusActive,
	})
	ws := &models.Workspace{Name: "Floor A"}
	if err := db.Create(ws).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := db.Create(&models.WorkspaceMember{
		WorkspaceID: ws.ID, UserID: member.UserID, Role: "member",
	}).Error; err != nil {
		t.Fatalf("member seed failed: %v", err)
	}

	workspaces, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(workspaces) != 1 {
		t.Fatalf("expected 1 workspace, got %d", len(workspaces))
	}
	if len(workspaces[0].Members) != 1 {
		t.Fatalf("expected 1 member preloaded, got %d", len(workspaces[0].Members))
	}
	profile := workspaces[0].Members[0].Profile
	if profile == nil || profile.Email != "member@example.com" {
		t.Errorf("expected member profile preloaded")
	}
}

func TestWorkspaceUpdate_Renames(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkspaceService(db, NewActivityLogService(db))

	ws := &models.Workspace{Name: "Old Name"}
	if err := db.Create(ws).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	updated, err := svc.Update(ws.ID, "New Name", "actor-1")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected rename, got %s", updated.Name)
	}
	if n := countActivityLogs(t, db); n != 1 {
		t.Errorf("expected 1 activity log, got %d", n)
	}
}
