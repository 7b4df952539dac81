package favorability

import (
	"fmt"

	"github.com/kindredchat/kindred/kindred/database/models"
)

// MemoryContext carries the interpolation fields for auto-created memories.
type MemoryContext struct {
	CharacterName string
	GiftType      string
	DateType      string
	FromStage     int
	ToStage       int
	MessageID     *int64
}

type memoryTemplate struct {
	MemoryType  string
	Importance  int
	IsHighlight bool
	Title       string
	Describe    func(ctx MemoryContext) string
}

// memoryTemplates maps event types to fixed templates. Event types without a
// template produce no memory; that is a no-op, not an error.
var memoryTemplates = map[string]memoryTemplate{
	"first_meet": {
		MemoryType:  models.MemoryTypeFirstMeet,
		Importance:  5,
		IsHighlight: true,
		Title:       "The day we met",
		Describe: func(ctx MemoryContext) string {
			return fmt.Sprintf("The very first conversation with %s. Every story has to start somewhere.", ctx.CharacterName)
		},
	},
	"stage_up": {
		MemoryType:  models.MemoryTypeStageUp,
		Importance:  4,
		IsHighlight: true,
		Title:       "Something changed between us",
		Describe: func(ctx MemoryContext) string {
			from := StageByIndex(ctx.FromStage).Label
			to := StageByIndex(ctx.ToStage).Label
			return fmt.Sprintf("The relationship grew from %s to %s.", from, to)
		},
	},
	"confession": {
		MemoryType:  models.MemoryTypeConfession,
		Importance:  5,
		IsHighlight: true,
		Title:       "A confession",
		Describe: func(ctx MemoryContext) string {
			return fmt.Sprintf("Feelings were finally put into words with %s.", ctx.CharacterName)
		},
	},
	"special_gift": {
		MemoryType:  models.MemoryTypeSpecialGift,
		Importance:  3,
		IsHighlight: false,
		Title:       "A thoughtful gift",
		Describe: func(ctx MemoryContext) string {
			if ctx.GiftType == "" {
				return "A gift, just because."
			}
			return fmt.Sprintf("A %s, given just because.", ctx.GiftType)
		},
	},
	"romantic_date": {
		MemoryType:  models.MemoryTypeRomanticDate,
		Importance:  4,
		IsHighlight: false,
		Title:       "A date to remember",
		Describe: func(ctx MemoryContext) string {
			if ctx.DateType == "" {
				return "Time spent together, away from everything else."
			}
			return fmt.Sprintf("A %s date, time spent together away from everything else.", ctx.DateType)
		},
	},
}

// BuildMemory instantiates the template for eventType against ctx. Returns
// nil when no template matches.
func BuildMemory(relationID int64, eventType string, ctx MemoryContext) *models.Memory {
	tmpl, ok := memoryTemplates[eventType]
	if !ok {
		return nil
	}
	return &models.Memory{
		RelationID:  relationID,
		Title:       tmpl.Title,
		Description: tmpl.Describe(ctx),
		MemoryType:  tmpl.MemoryType,
		Importance:  tmpl.Importance,
		IsHighlight: tmpl.IsHighlight,
		MessageID:   ctx.MessageID,
	}
}
