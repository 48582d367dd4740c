// services/suggest.go - Quest suggestion providers
//
// Suggestions are advisory only. A provider failure degrades to the built-in
// template provider and never touches reward or state logic.
package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cheihkseck32-hue/solo-leveling-system/models"
)

// QuestDraft is a suggested quest the user may turn into a real one.
type QuestDraft struct {
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	QuestType     models.QuestType    `json:"quest_type"`
	Difficulty    int                 `json:"difficulty"`
	RewardXP      int                 `json:"reward_xp"`
	RewardCoins   int                 `json:"reward_coins"`
	RequiredLevel int                 `json:"required_level"`
	Category      models.GoalCategory `json:"category"`
	Deadline      *time.Time          `json:"deadline,omitempty"`
}

// QuestSuggester produces quest drafts for a profile, optionally themed
// around a goal.
type QuestSuggester interface {
	SuggestQuests(profile *models.UserProfile, goal *models.Goal) ([]QuestDraft, error)
}

type difficultyFill struct {
	Fills map[string]string
	XP    int
	Coins int
}

type questTemplate struct {
	Title        string
	Description  string
	Difficulties map[int]difficultyFill
	StatFocus    models.StatType
}

var questTemplates = map[models.GoalCategory][]questTemplate{
	models.GoalProductivity: {
		{
			Title:       "Complete {task_count} tasks",
			Description: "Focus on completing {task_count} tasks to make progress on your goal.",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"task_count": "2-3"}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"task_count": "4-5"}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"task_count": "6-8"}, XP: 300, Coins: 30},
				4: {Fills: map[string]string{"task_count": "9-12"}, XP: 500, Coins: 50},
				5: {Fills: map[string]string{"task_count": "15+"}, XP: 800, Coins: 80},
			},
			StatFocus: models.StatIntelligence,
		},
		{
			Title:       "Work on {activity} for {time_amount}",
			Description: "Spend focused time on {activity} without distractions. {bonus_objective}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"time_amount": "30 minutes", "bonus_objective": "Take short breaks every 25 minutes."}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"time_amount": "1 hour", "bonus_objective": "Document your progress."}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"time_amount": "2 hours", "bonus_objective": "Share your learnings with others."}, XP: 300, Coins: 30},
				4: {Fills: map[string]string{"time_amount": "4 hours", "bonus_objective": "Create a summary of your work."}, XP: 500, Coins: 50},
				5: {Fills: map[string]string{"time_amount": "6 hours", "bonus_objective": "Teach someone what you learned."}, XP: 800, Coins: 80},
			},
			StatFocus: models.StatVitality,
		},
	},
	models.GoalLearning: {
		{
			Title:       "Master {subject}: {duration} Study Session",
			Description: "Focus on learning and practicing {subject}. {learning_strategy}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"duration": "30 minutes", "learning_strategy": "Take notes and review key concepts."}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"duration": "1 hour", "learning_strategy": "Create mind maps or diagrams."}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"duration": "2 hours", "learning_strategy": "Practice with real-world examples."}, XP: 400, Coins: 40},
				4: {Fills: map[string]string{"duration": "3 hours", "learning_strategy": "Teach concepts to others."}, XP: 600, Coins: 60},
				5: {Fills: map[string]string{"duration": "4 hours", "learning_strategy": "Create a comprehensive study guide."}, XP: 1000, Coins: 100},
			},
			StatFocus: models.StatIntelligence,
		},
		{
			Title:       "{subject} Challenge: {count} Advanced Exercises",
			Description: "Push your limits with challenging {subject} exercises. {practice_goal}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"count": "3-5", "practice_goal": "Focus on fundamentals."}, XP: 150, Coins: 15},
				2: {Fills: map[string]string{"count": "6-8", "practice_goal": "Tackle intermediate concepts."}, XP: 300, Coins: 30},
				3: {Fills: map[string]string{"count": "9-12", "practice_goal": "Solve complex problems."}, XP: 450, Coins: 45},
				4: {Fills: map[string]string{"count": "13-15", "practice_goal": "Create your own problems."}, XP: 700, Coins: 70},
				5: {Fills: map[string]string{"count": "16-20", "practice_goal": "Master advanced techniques."}, XP: 1000, Coins: 100},
			},
			StatFocus: models.StatAgility,
		},
	},
	models.GoalFitness: {
		{
			Title:       "{intensity} Workout: {duration} Challenge",
			Description: "Complete a {intensity} workout session. {workout_focus}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"duration": "20 minutes", "intensity": "Light", "workout_focus": "Focus on proper form."}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"duration": "40 minutes", "intensity": "Moderate", "workout_focus": "Increase repetitions."}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"duration": "60 minutes", "intensity": "Intense", "workout_focus": "Add complex movements."}, XP: 300, Coins: 30},
				4: {Fills: map[string]string{"duration": "90 minutes", "intensity": "Expert", "workout_focus": "Minimize rest periods."}, XP: 500, Coins: 50},
				5: {Fills: map[string]string{"duration": "120 minutes", "intensity": "Elite", "workout_focus": "Achieve personal records."}, XP: 800, Coins: 80},
			},
			StatFocus: models.StatStrength,
		},
		{
			Title:       "Endurance Challenge: {target}",
			Description: "Push your limits with this endurance challenge. {endurance_tip}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"target": "2000 steps", "endurance_tip": "Maintain a steady pace."}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"target": "5000 steps", "endurance_tip": "Add intervals of speed."}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"target": "10000 steps", "endurance_tip": "Include elevation changes."}, XP: 300, Coins: 30},
				4: {Fills: map[string]string{"target": "15000 steps", "endurance_tip": "Track your heart rate."}, XP: 500, Coins: 50},
				5: {Fills: map[string]string{"target": "20000 steps", "endurance_tip": "Maintain target heart rate."}, XP: 800, Coins: 80},
			},
			StatFocus: models.StatVitality,
		},
	},
	models.GoalCreativity: {
		{
			Title:       "Creative Project: {project_scope}",
			Description: "Express yourself through creative work. {creative_prompt}",
			Difficulties: map[int]difficultyFill{
				1: {Fills: map[string]string{"project_scope": "Quick Sketch", "creative_prompt": "Focus on basic techniques."}, XP: 100, Coins: 10},
				2: {Fills: map[string]string{"project_scope": "Detailed Drawing", "creative_prompt": "Experiment with new styles."}, XP: 200, Coins: 20},
				3: {Fills: map[string]string{"project_scope": "Mixed Media", "creative_prompt": "Combine multiple elements."}, XP: 300, Coins: 30},
				4: {Fills: map[string]string{"project_scope": "Portfolio Piece", "creative_prompt": "Tell a story through your work."}, XP: 500, Coins: 50},
				5: {Fills: map[string]string{"project_scope": "Masterwork", "creative_prompt": "Push artistic boundaries."}, XP: 800, Coins: 80},
			},
			StatFocus: models.StatSense,
		},
	},
}

// CategorizeGoal buckets a goal by keywords in its title and description.
func CategorizeGoal(title, description string) models.GoalCategory {
	text := strings.ToUpper(title + " " + description)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("STUDY", "LEARN", "COURSE", "EDUCATION"):
		return models.GoalLearning
	case contains("EXERCISE", "WORKOUT", "FITNESS", "GYM"):
		return models.GoalFitness
	case contains("ART", "CREATIVE", "PROJECT", "DESIGN"):
		return models.GoalCreativity
	default:
		return models.GoalProductivity
	}
}

var knownActivities = []string{
	"reading", "writing", "coding", "studying", "exercise",
	"meditation", "practice", "training", "work",
}

var knownSubjects = []string{
	"math", "science", "history", "programming", "language",
	"project", "presentation", "report", "analysis",
}

func extractKeyword(text string, candidates []string, fallback string) string {
	lower := strings.ToLower(text)
	for _, w := range candidates {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return fallback
}

// TemplateSuggester generates drafts from the built-in template tables. It
// is always available and needs no network.
type TemplateSuggester struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewTemplateSuggester(seed int64) *TemplateSuggester {
	return &TemplateSuggester{rng: rand.New(rand.NewSource(seed))}
}

func (t *TemplateSuggester) SuggestQuests(profile *models.UserProfile, goal *models.Goal) ([]QuestDraft, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var categories []models.GoalCategory
	if goal != nil {
		categories = append(categories, CategorizeGoal(goal.Title, goal.Description))
	} else {
		if profile.Strength > 10 {
			categories = append(categories, models.GoalFitness)
		}
		if profile.Intelligence > 10 {
			categories = append(categories, models.GoalLearning)
		}
		if profile.Sense > 10 {
			categories = append(categories, models.GoalCreativity)
		}
		if len(categories) == 0 {
			categories = []models.GoalCategory{models.GoalProductivity, models.GoalLearning}
		}
	}

	var drafts []QuestDraft
	for _, category := range categories {
		templates := questTemplates[category]
		count := t.rng.Intn(2) + 2 // 2-3 per category
		for i := 0; i < count; i++ {
			tmpl := templates[t.rng.Intn(len(templates))]
			difficulty := t.rollDifficulty(profile)
			drafts = append(drafts, t.render(tmpl, category, difficulty, goal))
		}
	}
	return drafts, nil
}

// GenerateQuestDrafts produces 3-5 drafts to decompose a goal, difficulty
// capped by the user's level, deadlines spread up to the goal's deadline.
func (t *TemplateSuggester) GenerateQuestDrafts(profile *models.UserProfile, goal *models.Goal, now time.Time) []QuestDraft {
	t.mu.Lock()
	defer t.mu.Unlock()

	category := CategorizeGoal(goal.Title, goal.Description)
	templates := questTemplates[category]

	maxDifficulty := profile.Level
	if maxDifficulty > 3 {
		maxDifficulty = 3
	}
	if maxDifficulty < 1 {
		maxDifficulty = 1
	}

	count := t.rng.Intn(3) + 3 // 3-5 per goal
	drafts := make([]QuestDraft, 0, count)
	for i := 0; i < count; i++ {
		tmpl := templates[t.rng.Intn(len(templates))]
		difficulty := t.rng.Intn(maxDifficulty) + 1
		draft := t.render(tmpl, category, difficulty, goal)

		if goal.Deadline != nil && goal.Deadline.After(now) {
			days := int(goal.Deadline.Sub(now).Hours() / 24)
			if days > 0 {
				d := now.AddDate(0, 0, t.rng.Intn(days)+1)
				if d.After(*goal.Deadline) {
					d = *goal.Deadline
				}
				draft.Deadline = &d
			}
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

func (t *TemplateSuggester) rollDifficulty(profile *models.UserProfile) int {
	max := profile.Level
	if max > 5 {
		max = 5
	}
	if max < 1 {
		max = 1
	}
	min := max - 2
	if min < 1 {
		min = 1
	}
	return min + t.rng.Intn(max-min+1)
}

func (t *TemplateSuggester) render(tmpl questTemplate, category models.GoalCategory, difficulty int, goal *models.Goal) QuestDraft {
	fill, ok := tmpl.Difficulties[difficulty]
	if !ok {
		difficulty = 1
		fill = tmpl.Difficulties[1]
	}

	goalText := ""
	if goal != nil {
		goalText = goal.Title + " " + goal.Description
	}

	replacements := map[string]string{
		"activity": extractKeyword(goalText, knownActivities, "the task"),
		"subject":  extractKeyword(goalText, knownSubjects, "your subject"),
	}
	for k, v := range fill.Fills {
		replacements[k] = v
	}

	title := tmpl.Title
	description := tmpl.Description
	for k, v := range replacements {
		title = strings.ReplaceAll(title, "{"+k+"}", v)
		description = strings.ReplaceAll(description, "{"+k+"}", v)
	}

	requiredLevel := difficulty - 1
	if requiredLevel < 1 {
		requiredLevel = 1
	}

	return QuestDraft{
		Title:         title,
		Description:   description,
		QuestType:     models.QuestType(tmpl.StatFocus),
		Difficulty:    difficulty,
		RewardXP:      fill.XP,
		RewardCoins:   fill.Coins,
		RequiredLevel: requiredLevel,
		Category:      category,
	}
}

// HTTPSuggester asks an external text-generation endpoint for drafts. Any
// failure (network, status, malformed body) is returned to the caller, who
// degrades to the template provider.
type HTTPSuggester struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSuggester(endpoint string) *HTTPSuggester {
	return &HTTPSuggester{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type suggesterRequest struct {
	Level int            `json:"level"`
	Rank  models.Rank    `json:"rank"`
	Stats map[string]int `json:"stats"`
	Goal  *goalSummary   `json:"goal,omitempty"`
}

type goalSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *HTTPSuggester) SuggestQuests(profile *models.UserProfile, goal *models.Goal) ([]QuestDraft, error) {
	req := suggesterRequest{
		Level: profile.Level,
		Rank:  profile.Rank,
		Stats: map[string]int{
			"strength":     profile.Strength,
			"agility":      profile.Agility,
			"vitality":     profile.Vitality,
			"sense":        profile.Sense,
			"intelligence": profile.Intelligence,
		},
	}
	if goal != nil {
		req.Goal = &goalSummary{Title: goal.Title, Description: goal.Description}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Post(h.endpoint, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggester returned status %d", resp.StatusCode)
	}

	var drafts []QuestDraft
	if err := json.NewDecoder(resp.Body).Decode(&drafts); err != nil {
		return nil, err
	}

	// Clamp whatever the remote model produced into valid ranges.
	valid := drafts[:0]
	for _, d := range drafts {
		if d.Title == "" {
			continue
		}
		if d.Difficulty < 1 {
			d.Difficulty = 1
		}
		if d.Difficulty > 5 {
			d.Difficulty = 5
		}
		if d.RequiredLevel < 1 {
			d.RequiredLevel = 1
		}
		if d.RewardXP <= 0 || d.RewardCoins <= 0 {
			xp, coins := DefaultRewardsForDifficulty(d.Difficulty)
			if d.RewardXP <= 0 {
				d.RewardXP = xp
			}
			if d.RewardCoins <= 0 {
				d.RewardCoins = coins
			}
		}
		if !models.StatType(d.QuestType).IsValid() {
			d.QuestType = models.QuestGeneral
		}
		valid = append(valid, d)
	}
	return valid, nil
}
