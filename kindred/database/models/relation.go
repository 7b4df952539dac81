package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Relation is the affinity state between one user and one AI character.
// Score is the source of truth for ranking; Stage is the persisted state
// machine position and only follows Score through the hysteresis buffer.
type Relation struct {
	bun.BaseModel `bun:"table:relations,alias:rel"`

	ID          int64  `bun:"id,pk,autoincrement"`
	UserID      string `bun:"user_id,notnull,unique:uq_relations_user_character"`
	CharacterID string `bun:"character_id,notnull,unique:uq_relations_user_character"`

	Score int    `bun:"score,notnull,default:0"`
	Stage int    `bun:"stage,notnull,default:0"`
	Mood  string `bun:"mood,notnull,default:'neutral'"`

	TotalMessages int64 `bun:"total_messages,notnull,default:0"`
	SpecialEvents int64 `bun:"special_events,notnull,default:0"`

	LastEventAt time.Time `bun:"last_event_at"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}
