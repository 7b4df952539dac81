package favorability

import "github.com/kindredchat/kindred/kindred/database/models"

// UnlockCondition is a conjunction of minimum thresholds. A zero field is
// unspecified and always satisfied.
type UnlockCondition struct {
	Stage    int // minimum stage reached
	Messages int // minimum total message count
	Gifts    int // minimum positive gift events
	Dates    int // minimum positive date events
}

// ConditionStats are the relation counters conditions evaluate against.
type ConditionStats struct {
	Stage    int
	Messages int
	Gifts    int
	Dates    int
}

// Met reports whether every specified sub-condition holds.
func (c UnlockCondition) Met(stats ConditionStats) bool {
	if c.Stage > 0 && stats.Stage < c.Stage {
		return false
	}
	if c.Messages > 0 && stats.Messages < c.Messages {
		return false
	}
	if c.Gifts > 0 && stats.Gifts < c.Gifts {
		return false
	}
	if c.Dates > 0 && stats.Dates < c.Dates {
		return false
	}
	return true
}

// CatalogEntry is one unlockable achievement definition.
type CatalogEntry struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    string
	Condition   UnlockCondition
}

// AchievementCatalog is the static set of unlockable achievements, loaded
// once at process start.
var AchievementCatalog = []CatalogEntry{
	{
		ID:          "first_words",
		Title:       "First Words",
		Description: "Exchange your very first message",
		Icon:        "💬",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Messages: 1},
	},
	{
		ID:          "chatterbox",
		Title:       "Chatterbox",
		Description: "Exchange 100 messages",
		Icon:        "🗨️",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Messages: 100},
	},
	{
		ID:          "inseparable",
		Title:       "Inseparable",
		Description: "Exchange 1000 messages",
		Icon:        "📚",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Messages: 1000},
	},
	{
		ID:          "getting_closer",
		Title:       "Getting Closer",
		Description: "Become acquaintances",
		Icon:        "🤝",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 1},
	},
	{
		ID:          "true_friends",
		Title:       "True Friends",
		Description: "Become friends",
		Icon:        "🌟",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 2},
	},
	{
		ID:          "the_spark",
		Title:       "The Spark",
		Description: "Become close friends",
		Icon:        "✨",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 3},
	},
	{
		ID:          "head_over_heels",
		Title:       "Head Over Heels",
		Description: "Become sweethearts",
		Icon:        "💘",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 4},
	},
	{
		ID:          "devoted_heart",
		Title:       "Devoted Heart",
		Description: "Become partners",
		Icon:        "💍",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 5},
	},
	{
		ID:          "soulmates",
		Title:       "Soulmates",
		Description: "Reach the final stage",
		Icon:        "💞",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 6},
	},
	{
		ID:          "first_gift",
		Title:       "First Gift",
		Description: "Give your first gift",
		Icon:        "🎁",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Gifts: 1},
	},
	{
		ID:          "generous_soul",
		Title:       "Generous Soul",
		Description: "Give 10 gifts",
		Icon:        "🛍️",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Gifts: 10},
	},
	{
		ID:          "first_date",
		Title:       "First Date",
		Description: "Go on your first date",
		Icon:        "☕",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Dates: 1},
	},
	{
		ID:          "hopeless_romantic",
		Title:       "Hopeless Romantic",
		Description: "Go on 10 dates",
		Icon:        "🌹",
		Category:    models.AchievementCategoryActivity,
		Condition:   UnlockCondition{Dates: 10},
	},
	{
		ID:          "perfect_partner",
		Title:       "Perfect Partner",
		Description: "Reach sweetheart stage with 5 gifts and 5 dates",
		Icon:        "👑",
		Category:    models.AchievementCategoryMilestone,
		Condition:   UnlockCondition{Stage: 4, Gifts: 5, Dates: 5},
	},
}

// CatalogEntryByID looks up a catalog entry, second return false if absent.
func CatalogEntryByID(id string) (CatalogEntry, bool) {
	for _, entry := range AchievementCatalog {
		if entry.ID == id {
			return entry, true
		}
	}
	return CatalogEntry{}, false
}
