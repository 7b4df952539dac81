package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Memory type constants
const (
	MemoryTypeFirstMeet    = "first_meet"
	MemoryTypeStageUp      = "stage_up"
	MemoryTypeConfession   = "confession"
	MemoryTypeSpecialGift  = "special_gift"
	MemoryTypeRomanticDate = "romantic_date"
	MemoryTypeCustom       = "custom"
)

// Memory is a curated, user-facing record of a notable moment in a relation.
type Memory struct {
	bun.BaseModel `bun:"table:memories,alias:mem"`

	ID          int64                  `bun:"id,pk,autoincrement"`
	RelationID  int64                  `bun:"relation_id,notnull"`
	Title       string                 `bun:"title,notnull"`
	Description string                 `bun:"description,notnull"`
	MemoryType  string                 `bun:"memory_type,notnull"`
	Importance  int                    `bun:"importance,notnull,default:1"`
	IsHighlight bool                   `bun:"is_highlight,notnull,default:false"`
	MessageID   *int64                 `bun:"message_id"`
	Metadata    map[string]interface{} `bun:"metadata,type:jsonb"`
	CreatedAt   time.Time              `bun:"created_at,notnull,default:current_timestamp"`
}
