package migration

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoRelation is a relationship document from the legacy deployment.
// Numeric fields are float64 because the old app wrote plain JS numbers.
type MongoRelation struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        string             `bson:"user_id"`
	CharacterID   string             `bson:"character_id"`
	Score         float64            `bson:"score"`
	Stage         float64            `bson:"stage"`
	Mood          string             `bson:"mood"`
	TotalMessages float64            `bson:"total_messages"`
	SpecialEvents float64            `bson:"special_events"`
	LastEventAt   time.Time          `bson:"last_event_at"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// MongoMemory is a memory document from the legacy deployment.
type MongoMemory struct {
	ID          primitive.ObjectID     `bson:"_id"`
	RelationID  primitive.ObjectID     `bson:"relation_id"`
	Title       string                 `bson:"title"`
	Description string                 `bson:"description"`
	MemoryType  string                 `bson:"memory_type"`
	Importance  float64                `bson:"importance"`
	IsHighlight bool                   `bson:"is_highlight"`
	Metadata    map[string]interface{} `bson:"metadata"`
	CreatedAt   time.Time              `bson:"created_at"`
}

// MongoEventLog is an event-log document from the legacy deployment. The old
// app had no category column; categories are assigned at import time.
type MongoEventLog struct {
	ID          primitive.ObjectID     `bson:"_id"`
	RelationID  primitive.ObjectID     `bson:"relation_id"`
	EventType   string                 `bson:"event_type"`
	DeltaScore  float64                `bson:"delta_score"`
	Description string                 `bson:"description"`
	Metadata    map[string]interface{} `bson:"metadata"`
	CreatedAt   time.Time              `bson:"created_at"`
}

// MongoAchievement is an unlocked-achievement document from the legacy
// deployment.
type MongoAchievement struct {
	ID            primitive.ObjectID `bson:"_id"`
	RelationID    primitive.ObjectID `bson:"relation_id"`
	AchievementID string             `bson:"achievement_id"`
	UnlockedAt    time.Time          `bson:"unlocked_at"`
}

// TableStats tracks per-table migration counters.
type TableStats struct {
	Read     int64
	Inserted int64
	Skipped  int64
	Failed   int64
}

// MigrationStats aggregates counters across the whole run.
type MigrationStats struct {
	mu        sync.Mutex
	Tables    map[string]*TableStats
	StartTime time.Time
}

func (s *MigrationStats) table(name string) *TableStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Tables[name]
	if !ok {
		t = &TableStats{}
		s.Tables[name] = t
	}
	return t
}
