package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Event categories tagged at write time. Achievement conditions and the
// stats summary aggregate on these instead of matching event type strings.
const (
	EventCategoryMessage    = "message"
	EventCategoryGift       = "gift"
	EventCategoryDate       = "date"
	EventCategoryConfession = "confession"
	EventCategoryMood       = "mood"
	EventCategorySystem     = "system"
	EventCategoryOther      = "other"
)

// EventLog is the append-only audit trail of scored interactions.
// Rows are never updated or deleted.
type EventLog struct {
	bun.BaseModel `bun:"table:event_logs,alias:ev"`

	ID          int64                  `bun:"id,pk,autoincrement"`
	RelationID  int64                  `bun:"relation_id,notnull"`
	EventType   string                 `bun:"event_type,notnull"`
	Category    string                 `bun:"category,notnull,default:'other'"`
	DeltaScore  int                    `bun:"delta_score,notnull,default:0"`
	Description string                 `bun:"description"`
	Metadata    map[string]interface{} `bun:"metadata,type:jsonb"`
	CreatedAt   time.Time              `bun:"created_at,notnull,default:current_timestamp"`
}
