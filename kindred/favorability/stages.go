package favorability

import "fmt"

// Stage is one relationship milestone. Min and Max are inclusive score
// bounds; the seven stages partition [0, MaxScore] exactly.
type Stage struct {
	Index       int
	Min         int
	Max         int
	Label       string
	Description string
}

// StageTable is the sole source of truth for score→stage mapping.
var StageTable = []Stage{
	{Index: 0, Min: 0, Max: 149, Label: "Stranger", Description: "You've only just met. Everything is still unfamiliar."},
	{Index: 1, Min: 150, Max: 299, Label: "Acquaintance", Description: "Conversation comes a little easier now."},
	{Index: 2, Min: 300, Max: 499, Label: "Friend", Description: "You look forward to talking every day."},
	{Index: 3, Min: 500, Max: 699, Label: "Close Friend", Description: "There's a spark neither of you mentions."},
	{Index: 4, Min: 700, Max: 849, Label: "Sweetheart", Description: "Feelings are out in the open."},
	{Index: 5, Min: 850, Max: 929, Label: "Partner", Description: "You're a real couple now."},
	{Index: 6, Min: 930, Max: 1000, Label: "Soulmate", Description: "Two hearts, one rhythm."},
}

// ResolveStage maps a raw score to a stage index by scanning from the
// highest stage down. Scores below stage 1's floor fall through to stage 0.
func ResolveStage(score int) int {
	for i := len(StageTable) - 1; i >= 0; i-- {
		if score >= StageTable[i].Min {
			return StageTable[i].Index
		}
	}
	return 0
}

// ShouldTransition reports whether a stage change should take effect given
// the current persisted stage and the new score. Promotion requires the
// score to clear the candidate stage's floor by bufferSize; demotion
// requires it to fall below the current stage's floor by the same margin.
// A score oscillating around a boundary stays put in the dead zone.
func ShouldTransition(currentStage, score, bufferSize int) bool {
	candidate := ResolveStage(score)
	if candidate == currentStage {
		return false
	}
	if candidate > currentStage {
		return score >= StageTable[candidate].Min+bufferSize
	}
	return score < StageTable[currentStage].Min-bufferSize
}

// StageByIndex returns the stage entry for an index, clamping out-of-range
// values to the nearest valid stage.
func StageByIndex(index int) Stage {
	if index < 0 {
		return StageTable[0]
	}
	if index >= len(StageTable) {
		return StageTable[len(StageTable)-1]
	}
	return StageTable[index]
}

// ValidateStageTable checks at startup that the stage table partitions
// [0, maxScore] with no gaps or overlaps.
func ValidateStageTable(maxScore int) error {
	if len(StageTable) == 0 {
		return fmt.Errorf("stage table is empty")
	}
	if StageTable[0].Min != 0 {
		return fmt.Errorf("stage 0 must start at 0, starts at %d", StageTable[0].Min)
	}
	for i, s := range StageTable {
		if s.Index != i {
			return fmt.Errorf("stage at position %d has index %d", i, s.Index)
		}
		if s.Min > s.Max {
			return fmt.Errorf("stage %d has inverted range [%d, %d]", i, s.Min, s.Max)
		}
		if i > 0 && s.Min != StageTable[i-1].Max+1 {
			return fmt.Errorf("gap or overlap between stage %d and %d", i-1, i)
		}
	}
	if last := StageTable[len(StageTable)-1]; last.Max != maxScore {
		return fmt.Errorf("stage table ends at %d, expected %d", last.Max, maxScore)
	}
	return nil
}
