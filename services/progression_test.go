package services

import (
	"testing"
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

func TestXPToNextLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 200},
		{2, 300},
		{9, 1000},
		{49, 5000},
	}
	for _, tc := range cases {
		if got := XPToNextLevel(tc.level); got != tc.want {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestRankForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  models.Rank
	}{
		{1, models.RankF},
		{4, models.RankF},
		{5, models.RankE},
		{9, models.RankE},
		{10, models.RankD},
		{19, models.RankD},
		{20, models.RankC},
		{29, models.RankC},
		{30, models.RankB},
		{39, models.RankB},
		{40, models.RankA},
		{49, models.RankA},
		{50, models.RankS},
		{100, models.RankS},
	}
	for _, tc := range cases {
		if got := RankForLevel(tc.level); got != tc.want {
			t.Errorf("RankForLevel(%d) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestAddExperienceSingleLevelUp(t *testing.T) {
	p := &models.UserProfile{Level: 1, DailyQuestLimit: 3, Rank: models.RankF}

	gained := AddExperience(p, 250)

	// 250 >= 200 levels up to 2; 250 < 300 stops there.
	if gained != 1 {
		t.Fatalf("levels gained = %d, want 1", gained)
	}
	if p.Level != 2 {
		t.Fatalf("level = %d, want 2", p.Level)
	}
	if p.Experience != 250 {
		t.Fatalf("experience = %d, want 250 (never consumed)", p.Experience)
	}
	if p.Experience >= XPToNextLevel(p.Level) {
		t.Fatalf("experience %d should be below next threshold %d", p.Experience, XPToNextLevel(p.Level))
	}
	if p.DailyQuestLimit != 4 {
		t.Fatalf("daily quest limit = %d, want 4", p.DailyQuestLimit)
	}
}

func TestAddExperienceCascade(t *testing.T) {
	p := &models.UserProfile{Level: 1, DailyQuestLimit: 3, Rank: models.RankF}

	// Enough XP to climb several levels in one award.
	AddExperience(p, 2000)

	if p.Level <= 2 {
		t.Fatalf("expected multiple level-ups, got level %d", p.Level)
	}
	if p.Experience != 2000 {
		t.Fatalf("experience = %d, want 2000", p.Experience)
	}
	if p.Experience >= XPToNextLevel(p.Level) {
		t.Fatalf("loop stopped early: %d >= %d", p.Experience, XPToNextLevel(p.Level))
	}
	if p.Rank != RankForLevel(p.Level) {
		t.Fatalf("rank %s out of sync with level %d", p.Rank, p.Level)
	}
}

func TestAddExperienceTerminatesAndCapsDailyLimit(t *testing.T) {
	p := &models.UserProfile{Level: 1, DailyQuestLimit: 3, Rank: models.RankF}

	AddExperience(p, 1_000_000)

	if p.Experience >= XPToNextLevel(p.Level) {
		t.Fatalf("termination invariant violated: %d >= %d", p.Experience, XPToNextLevel(p.Level))
	}
	if p.DailyQuestLimit != MaxDailyQuestLimit {
		t.Fatalf("daily quest limit = %d, want capped at %d", p.DailyQuestLimit, MaxDailyQuestLimit)
	}
	if p.Rank != models.RankS {
		t.Fatalf("rank = %s, want S after a million XP", p.Rank)
	}
}

func TestAddExperienceZeroAndNegative(t *testing.T) {
	p := &models.UserProfile{Level: 3, Experience: 150, DailyQuestLimit: 3}

	if gained := AddExperience(p, 0); gained != 0 {
		t.Fatalf("AddExperience(0) gained %d levels", gained)
	}
	if gained := AddExperience(p, -50); gained != 0 || p.Experience != 150 {
		t.Fatalf("negative amount mutated profile: gained=%d exp=%d", gained, p.Experience)
	}
}

func TestUpdateQuestStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		last       *time.Time
		streak     int
		wantStreak int
	}{
		{"first completion", nil, 0, 0},
		{"same day", timePtr(now.Add(-2 * time.Hour)), 2, 3},
		{"one day ago", timePtr(now.AddDate(0, 0, -1)), 2, 3},
		{"three days ago", timePtr(now.AddDate(0, 0, -3)), 5, 0},
		{"two days ago", timePtr(now.AddDate(0, 0, -2)), 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &models.UserProfile{QuestStreak: tc.streak, LastQuestCompletion: tc.last}
			UpdateQuestStreak(p, now)

			if p.QuestStreak != tc.wantStreak {
				t.Errorf("streak = %d, want %d", p.QuestStreak, tc.wantStreak)
			}
			if p.LastQuestCompletion == nil || !p.LastQuestCompletion.Equal(now) {
				t.Errorf("last completion not restamped")
			}
		})
	}
}

func TestCanTakeQuest(t *testing.T) {
	profile := &models.UserProfile{Level: 3, DailyQuestLimit: 2}

	cases := []struct {
		name          string
		requiredLevel int
		startedToday  int
		want          bool
	}{
		{"meets level, under limit", 1, 0, true},
		{"meets level, at limit", 1, 2, false},
		{"below required level", 5, 0, false},
		{"exact level", 3, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quest := &models.Quest{RequiredLevel: tc.requiredLevel}
			if got := CanTakeQuest(profile, quest, tc.startedToday); got != tc.want {
				t.Errorf("CanTakeQuest = %v, want %v", got, tc.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
