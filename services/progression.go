// services/progression.go - Level, rank and streak rules
package services

import (
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

const (
	MaxDailyQuestLimit = 10
	MinDailyQuestLimit = 1
)

// XPToNextLevel is the experience threshold to leave the given level.
// Experience is never consumed on level-up; the threshold rises instead.
func XPToNextLevel(level int) int {
	return (level + 1) * 100
}

// RankForLevel derives the hunter rank from level. Highest match wins.
func RankForLevel(level int) models.Rank {
	switch {
	case level >= 50:
		return models.RankS
	case level >= 40:
		return models.RankA
	case level >= 30:
		return models.RankB
	case level >= 20:
		return models.RankC
	case level >= 10:
		return models.RankD
	case level >= 5:
		return models.RankE
	default:
		return models.RankF
	}
}

// AddExperience applies XP to the profile and runs the level-up loop,
// returning the number of levels gained. The loop terminates because the
// threshold grows with each level while experience stays fixed.
func AddExperience(p *models.UserProfile, amount int) int {
	if amount < 0 {
		return 0
	}

	p.Experience += amount

	levelsGained := 0
	for p.Experience >= XPToNextLevel(p.Level) {
		levelUp(p)
		levelsGained++
	}
	return levelsGained
}

func levelUp(p *models.UserProfile) {
	p.Level++
	p.Rank = RankForLevel(p.Level)
	if p.DailyQuestLimit < MaxDailyQuestLimit {
		p.DailyQuestLimit++
	}
}

// UpdateQuestStreak advances the completion streak. Completing within a day
// of the previous completion (same day included) continues the streak; a gap
// of more than one day resets it. The completion timestamp is always
// restamped.
func UpdateQuestStreak(p *models.UserProfile, now time.Time) {
	if p.LastQuestCompletion != nil {
		if daysBetween(*p.LastQuestCompletion, now) <= 1 {
			p.QuestStreak++
		} else {
			p.QuestStreak = 0
		}
	}
	t := now
	p.LastQuestCompletion = &t
}

// daysBetween counts calendar days from a to b in UTC.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// CanTakeQuest reports whether the profile may start the quest given how
// many quests it already started today.
func CanTakeQuest(p *models.UserProfile, q *models.Quest, startedToday int) bool {
	if p.Level < q.RequiredLevel {
		return false
	}
	return startedToday < p.DailyQuestLimit
}

// XPProgress returns experience as a fraction of the next-level threshold,
// for display.
func XPProgress(p *models.UserProfile) float64 {
	needed := XPToNextLevel(p.Level)
	if needed <= 0 {
		return 0
	}
	progress := float64(p.Experience) / float64(needed)
	if progress > 1 {
		progress = 1
	}
	return progress * 100
}
