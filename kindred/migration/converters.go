package migration

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/favorability"
)

// convertRelation maps a legacy relation document to the new model. Legacy
// stage values are not trusted; the stage is re-resolved from the clamped
// score so imported rows satisfy the stage partition from day one.
func (m *Migrator) convertRelation(mr MongoRelation) *models.Relation {
	now := time.Now()

	score := m.cfg.Clamp(int(mr.Score))
	mood := mr.Mood
	if _, ok := favorability.MoodCatalog[mood]; !ok {
		mood = favorability.MoodNeutral
	}

	createdAt := mr.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return &models.Relation{
		UserID:        cleanseString(mr.UserID),
		CharacterID:   cleanseString(mr.CharacterID),
		Score:         score,
		Stage:         favorability.ResolveStage(score),
		Mood:          mood,
		TotalMessages: int64(mr.TotalMessages),
		SpecialEvents: int64(mr.SpecialEvents),
		LastEventAt:   mr.LastEventAt,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
}

func convertMemory(mm MongoMemory, relationID int64) *models.Memory {
	importance := int(mm.Importance)
	if importance < 1 {
		importance = 1
	}
	if importance > 5 {
		importance = 5
	}

	memoryType := mm.MemoryType
	if memoryType == "" {
		memoryType = models.MemoryTypeCustom
	}

	return &models.Memory{
		RelationID:  relationID,
		Title:       cleanseString(mm.Title),
		Description: cleanseString(mm.Description),
		MemoryType:  memoryType,
		Importance:  importance,
		IsHighlight: mm.IsHighlight,
		Metadata:    mm.Metadata,
		CreatedAt:   mm.CreatedAt,
	}
}

// convertEventLog assigns the write-time category the legacy schema lacked,
// using the same event-type mapping the engine applies to new events.
func convertEventLog(me MongoEventLog, relationID int64) *models.EventLog {
	eventType := strings.TrimPrefix(me.EventType, "special_")
	category := favorability.CategoryFor(eventType)
	if me.EventType == "message" {
		category = models.EventCategoryMessage
	}

	return &models.EventLog{
		RelationID:  relationID,
		EventType:   me.EventType,
		Category:    category,
		DeltaScore:  int(me.DeltaScore),
		Description: cleanseString(me.Description),
		Metadata:    me.Metadata,
		CreatedAt:   me.CreatedAt,
	}
}

func convertAchievement(ma MongoAchievement, relationID int64) *models.Achievement {
	entry, ok := favorability.CatalogEntryByID(ma.AchievementID)
	if !ok {
		return nil
	}

	unlockedAt := ma.UnlockedAt
	if unlockedAt.IsZero() {
		unlockedAt = time.Now()
	}

	return &models.Achievement{
		RelationID:    relationID,
		AchievementID: entry.ID,
		Title:         entry.Title,
		Description:   entry.Description,
		Icon:          entry.Icon,
		Category:      entry.Category,
		UnlockedAt:    unlockedAt,
	}
}

// cleanseString strips invalid UTF-8 and NUL bytes that Postgres rejects.
func cleanseString(s string) string {
	if utf8.ValidString(s) && !strings.ContainsRune(s, 0) {
		return s
	}
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}
