// services/quest_service.go - Quest lifecycle and reward application
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

type CreateQuestInput struct {
	Title         string
	Description   string
	QuestType     models.QuestType
	Difficulty    int
	RewardXP      int
	RewardCoins   int
	RequiredLevel int
	Deadline      *time.Time
	GoalID        *uint
}

// QuestCompletion reports what completing a quest changed. Applied is false
// when the call was an idempotent no-op on a terminal quest.
type QuestCompletion struct {
	Applied      bool                 `json:"applied"`
	XPAwarded    int                  `json:"xp_awarded"`
	CoinsAwarded int                  `json:"coins_awarded"`
	Lucky        bool                 `json:"lucky"`
	LevelBefore  int                  `json:"level_before"`
	LevelAfter   int                  `json:"level_after"`
	LeveledUp    bool                 `json:"leveled_up"`
	Rank         models.Rank          `json:"rank"`
	RankChanged  bool                 `json:"rank_changed"`
	QuestStreak  int                  `json:"quest_streak"`
	StatType     models.StatType      `json:"stat_type,omitempty"`
	StatIncrease int                  `json:"stat_increase,omitempty"`
	NewBalance   int                  `json:"new_balance"`
	Unlocked     []models.Achievement `json:"unlocked_achievements,omitempty"`
}

// CreateQuest stores a new quest for the user. Base rewards default from the
// difficulty tier when the caller leaves them unset.
func (s *Service) CreateQuest(userID uint, in CreateQuestInput) (*models.Quest, error) {
	if in.Difficulty < 1 {
		in.Difficulty = 1
	}
	if in.Difficulty > 5 {
		in.Difficulty = 5
	}
	if in.RequiredLevel < 1 {
		in.RequiredLevel = 1
	}
	if !models.StatType(in.QuestType).IsValid() {
		in.QuestType = models.QuestGeneral
	}
	if in.RewardXP <= 0 || in.RewardCoins <= 0 {
		xp, coins := DefaultRewardsForDifficulty(in.Difficulty)
		if in.RewardXP <= 0 {
			in.RewardXP = xp
		}
		if in.RewardCoins <= 0 {
			in.RewardCoins = coins
		}
	}

	if in.GoalID != nil {
		var goal models.Goal
		if err := s.db.Where("id = ? AND user_id = ?", *in.GoalID, userID).First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGoalNotFound
			}
			return nil, err
		}
	}

	quest := models.Quest{
		UserID:        userID,
		GoalID:        in.GoalID,
		Title:         in.Title,
		Description:   in.Description,
		QuestType:     in.QuestType,
		Difficulty:    in.Difficulty,
		RewardXP:      in.RewardXP,
		RewardCoins:   in.RewardCoins,
		RequiredLevel: in.RequiredLevel,
		Deadline:      in.Deadline,
		Status:        models.QuestNotStarted,
	}
	if err := s.db.Create(&quest).Error; err != nil {
		return nil, err
	}
	return &quest, nil
}

// ListQuests returns the user's quests, newest first.
func (s *Service) ListQuests(userID uint) ([]models.Quest, error) {
	var quests []models.Quest
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&quests).Error
	return quests, err
}

// GetQuest fetches one quest owned by the user.
func (s *Service) GetQuest(userID, questID uint) (*models.Quest, error) {
	var quest models.Quest
	err := s.db.Where("id = ? AND user_id = ?", questID, userID).First(&quest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

// StartQuest moves a not_started quest into in_progress. Returns false
// without error on an invalid transition or when the level gate or daily
// limit refuses the quest.
func (s *Service) StartQuest(userID, questID uint) (bool, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.now()
	started := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quest models.Quest
		if err := tx.Where("id = ? AND user_id = ?", questID, userID).First(&quest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestNotFound
			}
			return err
		}
		if quest.Status != models.QuestNotStarted {
			return nil
		}

		profile, err := profileForUser(tx, userID)
		if err != nil {
			return err
		}

		startedToday, err := s.questsStartedToday(tx, userID, now)
		if err != nil {
			return err
		}
		if !CanTakeQuest(profile, &quest, startedToday) {
			return nil
		}

		quest.Status = models.QuestInProgress
		quest.StartedAt = &now
		if err := tx.Save(&quest).Error; err != nil {
			return err
		}
		started = true
		return nil
	})
	return started, err
}

// CompleteQuest is the reward path: exactly-once reward computation, XP and
// level cascade, stat training, streak update and achievement unlocks, all
// inside one transaction. Completing a terminal quest is a no-op.
func (s *Service) CompleteQuest(userID, questID uint) (*QuestCompletion, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.now()
	result := &QuestCompletion{}
	var quest models.Quest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", questID, userID).First(&quest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestNotFound
			}
			return err
		}
		if quest.IsTerminal() {
			return nil
		}

		profile, err := profileForUser(tx, userID)
		if err != nil {
			return err
		}

		// Streak bonus uses the streak as it stood before this completion.
		rewards := ComputeQuestRewards(&quest, profile, now, s.luck)

		levelBefore := profile.Level
		rankBefore := profile.Rank

		quest.Status = models.QuestCompleted
		quest.CompletedAt = &now
		if err := tx.Save(&quest).Error; err != nil {
			return err
		}

		if rewards.HasStat {
			profile.AddStat(rewards.StatType, rewards.StatIncrease)
		}
		AddExperience(profile, rewards.XP)
		profile.Coins += rewards.Coins
		UpdateQuestStreak(profile, now)

		var completedCount int64
		if err := tx.Model(&models.Quest{}).
			Where("user_id = ? AND status = ?", userID, models.QuestCompleted).
			Count(&completedCount).Error; err != nil {
			return err
		}

		unlocked, err := applyAchievements(tx, profile, int(completedCount), now)
		if err != nil {
			return err
		}

		if err := tx.Save(profile).Error; err != nil {
			return err
		}

		result.Applied = true
		result.XPAwarded = rewards.XP
		result.CoinsAwarded = rewards.Coins
		result.Lucky = rewards.Lucky
		result.LevelBefore = levelBefore
		result.LevelAfter = profile.Level
		result.LeveledUp = profile.Level > levelBefore
		result.Rank = profile.Rank
		result.RankChanged = profile.Rank != rankBefore
		result.QuestStreak = profile.QuestStreak
		result.NewBalance = profile.Coins
		if rewards.HasStat {
			result.StatType = rewards.StatType
			result.StatIncrease = rewards.StatIncrease
		}
		result.Unlocked = unlocked
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Applied {
		s.publishCompletion(userID, &quest, result)
	}
	return result, nil
}

// FailQuest marks an in_progress quest failed. Terminal, awards nothing.
func (s *Service) FailQuest(userID, questID uint) (bool, error) {
	failed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var quest models.Quest
		if err := tx.Where("id = ? AND user_id = ?", questID, userID).First(&quest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestNotFound
			}
			return err
		}
		if quest.Status != models.QuestInProgress {
			return nil
		}
		quest.Status = models.QuestFailed
		if err := tx.Save(&quest).Error; err != nil {
			return err
		}
		failed = true
		return nil
	})
	return failed, err
}

func (s *Service) questsStartedToday(tx *gorm.DB, userID uint, now time.Time) (int, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var count int64
	err := tx.Model(&models.Quest{}).
		Where("user_id = ? AND started_at >= ?", userID, dayStart).
		Count(&count).Error
	return int(count), err
}

func (s *Service) publishCompletion(userID uint, quest *models.Quest, result *QuestCompletion) {
	s.hub.Publish(userID, EventQuestCompleted, map[string]interface{}{
		"quest_id":      quest.ID,
		"title":         quest.Title,
		"xp_awarded":    result.XPAwarded,
		"coins_awarded": result.CoinsAwarded,
		"lucky":         result.Lucky,
		"quest_streak":  result.QuestStreak,
	})
	if result.LeveledUp {
		s.hub.Publish(userID, EventLevelUp, map[string]interface{}{
			"level": result.LevelAfter,
		})
	}
	if result.RankChanged {
		s.hub.Publish(userID, EventRankUp, map[string]interface{}{
			"rank": result.Rank,
		})
	}
	for _, ach := range result.Unlocked {
		s.hub.Publish(userID, EventAchievementUnlocked, map[string]interface{}{
			"name":        ach.Name,
			"xp_reward":   ach.XPReward,
			"coin_reward": ach.CoinReward,
		})
	}
}

func profileForUser(tx *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := tx.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
