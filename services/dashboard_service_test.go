package services

import (
	"testing"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

func TestDashboard(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")

	active := createTestQuest(t, svc, profile.UserID, CreateQuestInput{Title: "ongoing"})
	if _, err := svc.StartQuest(profile.UserID, active.ID); err != nil {
		t.Fatalf("start: %v", err)
	}

	done := createTestQuest(t, svc, profile.UserID, CreateQuestInput{Title: "done", Difficulty: 2})
	if _, err := svc.StartQuest(profile.UserID, done.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.CompleteQuest(profile.UserID, done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	state, err := svc.Dashboard(profile.UserID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(state.ActiveQuests) != 1 || state.ActiveQuests[0].Title != "ongoing" {
		t.Errorf("active quests = %+v", state.ActiveQuests)
	}
	if len(state.CompletedQuests) != 1 || state.CompletedQuests[0].Title != "done" {
		t.Errorf("completed quests = %+v", state.CompletedQuests)
	}
	if state.DailyCompleted != 1 {
		t.Errorf("daily completed = %d, want 1", state.DailyCompleted)
	}
	if state.XPToNextLevel != XPToNextLevel(state.Profile.Level) {
		t.Errorf("xp_to_next_level = %d out of sync with level %d", state.XPToNextLevel, state.Profile.Level)
	}
	if state.Stats[models.StatStrength] != state.Profile.Strength {
		t.Errorf("stats rollup missing base strength")
	}
}

func TestDashboardUnknownUser(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Dashboard(9999); err != ErrProfileNotFound {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateProfileName(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")

	updated, err := svc.UpdateProfileName(profile.UserID, "Shadow Monarch")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Shadow Monarch" {
		t.Errorf("name = %q", updated.Name)
	}
	if got := reloadProfile(t, svc, profile.UserID); got.Name != "Shadow Monarch" {
		t.Errorf("stored name = %q", got.Name)
	}
}
