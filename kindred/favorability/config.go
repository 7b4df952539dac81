package favorability

import "github.com/kindredchat/kindred/kindred/database/models"

// Config holds the engine tunables. Catalogs (stages, moods, achievements)
// are fixed in code; these are the numeric knobs around them.
type Config struct {
	// Score bounds
	MinScore int
	MaxScore int

	// Hysteresis buffer applied on both sides of every stage boundary.
	// Flat regardless of stage width.
	StageBufferSize int

	// Number of recent event-log deltas fed into mood determination.
	MoodEventWindow int

	// Score deltas per special event type, and the fallback for
	// unrecognized types. Unknown types are accepted, not rejected.
	EventScores       map[string]int
	DefaultEventDelta int
}

func NewDefaultConfig() *Config {
	return &Config{
		MinScore:        0,
		MaxScore:        1000,
		StageBufferSize: 20,
		MoodEventWindow: 10,
		EventScores: map[string]int{
			"flower":      25,
			"chocolate":   20,
			"jewelry":     50,
			"date_cafe":   30,
			"date_movie":  35,
			"date_dinner": 45,
			"surprise":    60,
			"confession":  80,
			"proposal":    100,
		},
		DefaultEventDelta: 10,
	}
}

// DeltaFor resolves the score delta for a special event type.
func (c *Config) DeltaFor(eventType string) int {
	if delta, ok := c.EventScores[eventType]; ok {
		return delta
	}
	return c.DefaultEventDelta
}

// Clamp bounds a score to [MinScore, MaxScore].
func (c *Config) Clamp(score int) int {
	if score < c.MinScore {
		return c.MinScore
	}
	if score > c.MaxScore {
		return c.MaxScore
	}
	return score
}

// eventCategories maps special event types to their write-time category tag.
var eventCategories = map[string]string{
	"flower":      models.EventCategoryGift,
	"chocolate":   models.EventCategoryGift,
	"jewelry":     models.EventCategoryGift,
	"surprise":    models.EventCategoryGift,
	"date_cafe":   models.EventCategoryDate,
	"date_movie":  models.EventCategoryDate,
	"date_dinner": models.EventCategoryDate,
	"confession":  models.EventCategoryConfession,
	"proposal":    models.EventCategoryConfession,
}

// CategoryFor resolves the event-log category for a special event type.
func CategoryFor(eventType string) string {
	if cat, ok := eventCategories[eventType]; ok {
		return cat
	}
	return models.EventCategoryOther
}
