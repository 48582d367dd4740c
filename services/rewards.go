// services/rewards.go - Quest reward computation
package services

import (
	"math"
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// Reward tables keyed by difficulty (1-5). Loaded once, read-only.
var (
	xpMultipliers   = map[int]float64{1: 1.0, 2: 1.5, 3: 2.0, 4: 3.0, 5: 5.0}
	coinMultipliers = map[int]float64{1: 1.0, 2: 1.5, 3: 2.0, 4: 3.0, 5: 5.0}

	// Base rewards assigned at quest creation when the caller leaves them
	// unset.
	defaultXPRewards   = map[int]int{1: 100, 2: 200, 3: 300, 4: 500, 5: 800}
	defaultCoinRewards = map[int]int{1: 10, 2: 20, 3: 30, 4: 50, 5: 80}
)

const (
	luckyChance    = 0.1
	luckyMin       = 1.2
	luckySpread    = 0.8
	maxTimeBonus   = 0.5
	streakBonusCap = 0.3
)

// LuckRoll produces a uniform value in [0,1). Injected so reward tests are
// deterministic.
type LuckRoll func() float64

// QuestRewards is the outcome of completing one quest.
type QuestRewards struct {
	XP           int
	Coins        int
	StatType     models.StatType
	StatIncrease int
	HasStat      bool
	Lucky        bool
}

// DefaultRewardsForDifficulty returns the base XP and coin rewards for a
// difficulty tier.
func DefaultRewardsForDifficulty(difficulty int) (xp, coins int) {
	if v, ok := defaultXPRewards[difficulty]; ok {
		xp = v
	} else {
		xp = defaultXPRewards[1]
	}
	if v, ok := defaultCoinRewards[difficulty]; ok {
		coins = v
	} else {
		coins = defaultCoinRewards[1]
	}
	return xp, coins
}

// ComputeQuestRewards resolves the final XP and coin awards for completing
// the quest at the given time. The streak on the profile is the streak prior
// to this completion. Final values never drop below the quest's base values.
func ComputeQuestRewards(q *models.Quest, p *models.UserProfile, now time.Time, luck LuckRoll) QuestRewards {
	r := QuestRewards{}

	xpMult, ok := xpMultipliers[q.Difficulty]
	if !ok {
		xpMult = 1.0
	}
	coinMult, ok := coinMultipliers[q.Difficulty]
	if !ok {
		coinMult = 1.0
	}

	timeBonus := 1.0
	if q.Deadline != nil && now.Before(*q.Deadline) {
		total := q.Deadline.Sub(q.CreatedAt)
		remaining := q.Deadline.Sub(now)
		if total > 0 && remaining > 0 {
			timeBonus = 1.0 + maxTimeBonus*(remaining.Seconds()/total.Seconds())
		}
	}

	streakBonus := 1.0
	if p.QuestStreak > 0 {
		streakBonus = 1.0 + math.Min(float64(p.QuestStreak)*0.1, streakBonusCap)
	}

	r.XP = int(math.Floor(float64(q.RewardXP) * xpMult * timeBonus * streakBonus))
	if r.XP < q.RewardXP {
		r.XP = q.RewardXP
	}

	levelBonus := 1.0
	if q.RequiredLevel > 1 {
		levelBonus = 1.0 + float64(q.RequiredLevel-1)*0.05
	}

	luckyBonus := 1.0
	if luck != nil && luck() < luckyChance {
		r.Lucky = true
		luckyBonus = luckyMin + luck()*luckySpread
	}

	r.Coins = int(math.Floor(float64(q.RewardCoins) * coinMult * levelBonus * luckyBonus))
	if r.Coins < q.RewardCoins {
		r.Coins = q.RewardCoins
	}

	if stat, ok := q.StatTrained(); ok {
		r.StatType = stat
		r.StatIncrease = q.Difficulty
		r.HasStat = true
	}

	return r
}
