package services

import (
	"errors"
	"testing"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

func createTestGoal(t *testing.T, svc *Service, userID uint, title string) *models.Goal {
	t.Helper()
	goal := models.Goal{Title: title, Category: models.GoalFitness, Priority: 3}
	if err := svc.CreateGoal(userID, &goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return &goal
}

func TestCompletionPercentage(t *testing.T) {
	done := models.Quest{Status: models.QuestCompleted}
	open := models.Quest{Status: models.QuestInProgress}

	cases := []struct {
		name   string
		quests []models.Quest
		want   int
	}{
		{"no quests", nil, 0},
		{"none completed", []models.Quest{open, open}, 0},
		{"one of three", []models.Quest{done, open, open}, 33},
		{"two of three", []models.Quest{done, done, open}, 66},
		{"all completed", []models.Quest{done, done}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompletionPercentage(tc.quests); got != tc.want {
				t.Errorf("percentage = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCreateGoalNormalizes(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")

	goal := models.Goal{Title: "Weird", Category: "cooking", Priority: 9}
	if err := svc.CreateGoal(profile.UserID, &goal); err != nil {
		t.Fatalf("create: %v", err)
	}

	if goal.Category != models.GoalProductivity {
		t.Errorf("category = %s, want fallback productivity", goal.Category)
	}
	if goal.Priority != 5 {
		t.Errorf("priority = %d, want clamped 5", goal.Priority)
	}
	if !goal.IsActive {
		t.Error("new goal should be active")
	}
}

func TestUpdateGoalNormalizes(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	goal := createTestGoal(t, svc, profile.UserID, "Stay valid")

	edit := models.Goal{ID: goal.ID, Title: "Stay valid", Category: "cooking", IsActive: true, Priority: 99}
	if err := svc.UpdateGoal(profile.UserID, &edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	if edit.Priority != 5 {
		t.Errorf("priority = %d, want clamped 5", edit.Priority)
	}
	if edit.Category != models.GoalProductivity {
		t.Errorf("category = %s, want fallback productivity", edit.Category)
	}

	detail, err := svc.GoalDetail(profile.UserID, goal.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Goal.Priority != 5 || detail.Goal.Category != models.GoalProductivity {
		t.Errorf("stored goal = (priority %d, category %s), want (5, productivity)",
			detail.Goal.Priority, detail.Goal.Category)
	}

	// Decomposition must still find templates for the stored category.
	quests, err := svc.GenerateQuestsFromGoal(profile.UserID, goal.ID)
	if err != nil {
		t.Fatalf("generate after update: %v", err)
	}
	if len(quests) == 0 {
		t.Error("no quests generated for normalized category")
	}
}

func TestGoalDetailRollup(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	goal := createTestGoal(t, svc, profile.UserID, "Get fit")

	for i := 0; i < 3; i++ {
		quest := createTestQuest(t, svc, profile.UserID, CreateQuestInput{Title: "step", GoalID: &goal.ID})
		if i == 0 {
			if _, err := svc.StartQuest(profile.UserID, quest.ID); err != nil {
				t.Fatalf("start: %v", err)
			}
			if _, err := svc.CompleteQuest(profile.UserID, quest.ID); err != nil {
				t.Fatalf("complete: %v", err)
			}
		}
	}

	detail, err := svc.GoalDetail(profile.UserID, goal.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.CompletionPercentage != 33 {
		t.Errorf("percentage = %d, want 33", detail.CompletionPercentage)
	}
	if detail.IsCompleted {
		t.Error("goal reported completed at 33%")
	}
	if len(detail.Quests) != 3 {
		t.Errorf("quests = %d, want 3", len(detail.Quests))
	}
}

func TestGoalDetailCompleted(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	goal := createTestGoal(t, svc, profile.UserID, "Small win")

	quest := createTestQuest(t, svc, profile.UserID, CreateQuestInput{Title: "only step", GoalID: &goal.ID})
	if _, err := svc.StartQuest(profile.UserID, quest.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.CompleteQuest(profile.UserID, quest.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	detail, err := svc.GoalDetail(profile.UserID, goal.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.CompletionPercentage != 100 || !detail.IsCompleted {
		t.Errorf("rollup = (%d%%, completed %v), want (100%%, true)",
			detail.CompletionPercentage, detail.IsCompleted)
	}
}

func TestGoalDetailNotFound(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	other := createTestUser(t, svc, "other")
	goal := createTestGoal(t, svc, profile.UserID, "Private")

	if _, err := svc.GoalDetail(profile.UserID, 9999); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("unknown id err = %v, want ErrGoalNotFound", err)
	}
	if _, err := svc.GoalDetail(other.UserID, goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("cross-user err = %v, want ErrGoalNotFound", err)
	}
}

func TestUpdateGoal(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	goal := createTestGoal(t, svc, profile.UserID, "Old title")

	edit := models.Goal{ID: goal.ID, Title: "New title", Category: models.GoalLearning, IsActive: false, Priority: 2}
	if err := svc.UpdateGoal(profile.UserID, &edit); err != nil {
		t.Fatalf("update: %v", err)
	}

	detail, err := svc.GoalDetail(profile.UserID, goal.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Goal.Title != "New title" || detail.Goal.Category != models.GoalLearning || detail.Goal.IsActive {
		t.Errorf("goal after update = %+v", detail.Goal)
	}
}

func TestDeleteGoalDetachesQuests(t *testing.T) {
	svc := newTestService(t)
	profile := createTestUser(t, svc, "hunter")
	goal := createTestGoal(t, svc, profile.UserID, "Doomed goal")

	quest := createTestQuest(t, svc, profile.UserID, CreateQuestInput{Title: "survivor", GoalID: &goal.ID})

	if err := svc.DeleteGoal(profile.UserID, goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GoalDetail(profile.UserID, goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("deleted goal still readable: %v", err)
	}

	got, err := svc.GetQuest(profile.UserID, quest.ID)
	if err != nil {
		t.Fatalf("quest gone with the goal: %v", err)
	}
	if got.GoalID != nil {
		t.Errorf("quest goal_id = %v, want detached nil", *got.GoalID)
	}
}
