package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Achievement category constants
const (
	AchievementCategoryMilestone = "milestone"
	AchievementCategoryActivity  = "activity"
)

// Achievement is one unlocked catalog entry for a relation. The
// (relation_id, achievement_id) pair is unique; concurrent unlock attempts
// race on the constraint and the loser resolves to the existing row.
type Achievement struct {
	bun.BaseModel `bun:"table:achievements,alias:ach"`

	ID            int64     `bun:"id,pk,autoincrement"`
	RelationID    int64     `bun:"relation_id,notnull,unique:uq_achievements_relation_achievement"`
	AchievementID string    `bun:"achievement_id,notnull,unique:uq_achievements_relation_achievement"`
	Title         string    `bun:"title,notnull"`
	Description   string    `bun:"description,notnull"`
	Icon          string    `bun:"icon"`
	Category      string    `bun:"category,notnull"`
	UnlockedAt    time.Time `bun:"unlocked_at,notnull,default:current_timestamp"`
}
