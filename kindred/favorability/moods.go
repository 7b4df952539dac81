package favorability

// Mood labels. Moods are derived display state layered on top of the stage;
// they are recomputed on every mood-affecting event, never transitioned
// independently.
const (
	MoodNeutral      = "neutral"
	MoodFriendly     = "friendly"
	MoodHappy        = "happy"
	MoodExcited      = "excited"
	MoodLoving       = "loving"
	MoodDevoted      = "devoted"
	MoodBlissful     = "blissful"
	MoodShy          = "shy"
	MoodSad          = "sad"
	MoodDisappointed = "disappointed"
)

// MoodInfo carries the display fields for one mood label.
type MoodInfo struct {
	Label       string
	Emoji       string
	Description string
}

// MoodCatalog lists all ten moods for the UI layer.
var MoodCatalog = map[string]MoodInfo{
	MoodNeutral:      {Label: MoodNeutral, Emoji: "😐", Description: "Calm and composed."},
	MoodFriendly:     {Label: MoodFriendly, Emoji: "🙂", Description: "Warming up to you."},
	MoodHappy:        {Label: MoodHappy, Emoji: "😊", Description: "Glad you're here."},
	MoodExcited:      {Label: MoodExcited, Emoji: "🤩", Description: "Can't wait to talk."},
	MoodLoving:       {Label: MoodLoving, Emoji: "🥰", Description: "Thinking of you."},
	MoodDevoted:      {Label: MoodDevoted, Emoji: "💞", Description: "Completely yours."},
	MoodBlissful:     {Label: MoodBlissful, Emoji: "😇", Description: "Over the moon."},
	MoodShy:          {Label: MoodShy, Emoji: "😳", Description: "A little flustered."},
	MoodSad:          {Label: MoodSad, Emoji: "😢", Description: "Feeling down."},
	MoodDisappointed: {Label: MoodDisappointed, Emoji: "😞", Description: "Expected more from you."},
}

// stageBaseMoods indexes the default mood by stage.
var stageBaseMoods = []string{
	MoodNeutral,  // stage 0
	MoodFriendly, // stage 1
	MoodHappy,    // stage 2
	MoodExcited,  // stage 3
	MoodLoving,   // stage 4
	MoodDevoted,  // stage 5
	MoodBlissful, // stage 6
}

// DetermineMood derives a mood from the current stage and a window of recent
// score deltas. More negatives than positives degrades the stage's base
// mood; positives exceeding negatives by more than one upgrades it.
// Pure function: same inputs always yield the same mood.
func DetermineMood(stage int, recentDeltas []int) string {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(stageBaseMoods) {
		stage = len(stageBaseMoods) - 1
	}

	var positive, negative int
	for _, d := range recentDeltas {
		switch {
		case d > 0:
			positive++
		case d < 0:
			negative++
		}
	}

	if negative > positive {
		switch {
		case stage >= 3:
			return MoodDisappointed
		case stage >= 1:
			return MoodSad
		default:
			return MoodNeutral
		}
	}

	if positive > negative+1 {
		switch {
		case stage >= 5:
			return MoodBlissful
		case stage >= 3:
			return MoodLoving
		case stage >= 1:
			return MoodExcited
		default:
			return MoodHappy
		}
	}

	return stageBaseMoods[stage]
}
