// services/suggest_service.go - Suggestion orchestration and goal decomposition
package services

import (
	"log"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// SuggestQuests returns drafts from the configured provider, falling back to
// the built-in templates when it fails. Never returns an error; suggestions
// are advisory.
func (s *Service) SuggestQuests(userID uint, goalID *uint) []QuestDraft {
	profile, err := profileForUser(s.db, userID)
	if err != nil {
		return nil
	}

	var goal *models.Goal
	if goalID != nil {
		var g models.Goal
		if err := s.db.Where("id = ? AND user_id = ?", *goalID, userID).First(&g).Error; err == nil {
			goal = &g
		}
	}

	drafts, err := s.suggester.SuggestQuests(profile, goal)
	if err == nil && len(drafts) > 0 {
		return drafts
	}
	if err != nil {
		log.Printf("Quest suggester failed, falling back to templates: %v", err)
	}

	fallback := NewTemplateSuggester(s.now().UnixNano())
	drafts, _ = fallback.SuggestQuests(profile, goal)
	return drafts
}

// GenerateQuestsFromGoal decomposes a freshly created goal into 3-5 stored
// quests attached to it. Returns the created quests.
func (s *Service) GenerateQuestsFromGoal(userID, goalID uint) ([]models.Quest, error) {
	profile, err := profileForUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return nil, ErrGoalNotFound
	}

	generator := NewTemplateSuggester(s.now().UnixNano())
	drafts := generator.GenerateQuestDrafts(profile, &goal, s.now())

	quests := make([]models.Quest, 0, len(drafts))
	for _, draft := range drafts {
		gid := goal.ID
		quest, err := s.CreateQuest(userID, CreateQuestInput{
			Title:         draft.Title,
			Description:   draft.Description,
			QuestType:     draft.QuestType,
			Difficulty:    draft.Difficulty,
			RewardXP:      draft.RewardXP,
			RewardCoins:   draft.RewardCoins,
			RequiredLevel: draft.RequiredLevel,
			Deadline:      draft.Deadline,
			GoalID:        &gid,
		})
		if err != nil {
			return nil, err
		}
		quests = append(quests, *quest)
	}
	return quests, nil
}
