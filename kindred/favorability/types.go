package favorability

import (
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
)

// EventResult is what ProcessSpecialEvent returns to its caller: the updated
// relation, the applied delta, and any achievements unlocked by the event.
// SideEffects reports the post-commit hooks; a failed hook never fails the
// primary score/log update.
type EventResult struct {
	Relation        *models.Relation
	DeltaScore      int
	EventType       string
	NewAchievements []*models.Achievement
	SideEffects     []HookResult
}

// HookResult is the outcome of one post-commit side effect.
type HookResult struct {
	Name string
	Err  error
}

// CreateMemoryParams are the caller-supplied fields for a manual memory.
type CreateMemoryParams struct {
	Title       string
	Description string
	MemoryType  string
	Importance  int
	IsHighlight bool
	MessageID   *int64
	Metadata    map[string]interface{}
}

// AchievementStatus pairs a catalog entry with its unlock state for one
// relation.
type AchievementStatus struct {
	Entry      CatalogEntry
	Unlocked   bool
	UnlockedAt time.Time
}

// StatsSummary is the derived read-only stats view for one relation.
type StatsSummary struct {
	Score                 int
	Stage                 Stage
	Mood                  string
	TotalMessages         int64
	SpecialEvents         int64
	PositiveEvents        int
	NegativeEvents        int
	GiftEvents            int
	DateEvents            int
	HighlightMemories     int
	DaysSinceFirstContact int
	DaysSinceLastEvent    int
}
