package favorability

import "testing"

func TestDetermineMood(t *testing.T) {
	tests := []struct {
		name   string
		stage  int
		deltas []int
		want   string
	}{
		{name: "EmptyWindowStranger", stage: 0, deltas: nil, want: MoodNeutral},
		{name: "EmptyWindowSoulmate", stage: 6, deltas: nil, want: MoodBlissful},
		{name: "BalancedWindowKeepsBase", stage: 2, deltas: []int{5, -5}, want: MoodHappy},
		{name: "SingleGainKeepsBase", stage: 4, deltas: []int{25}, want: MoodLoving},
		{name: "NegativeMajorityHighStage", stage: 3, deltas: []int{-5, -3, 2}, want: MoodDisappointed},
		{name: "NegativeMajorityMidStage", stage: 1, deltas: []int{-5, -3, 2}, want: MoodSad},
		{name: "NegativeMajorityStranger", stage: 0, deltas: []int{-5, -3}, want: MoodNeutral},
		{name: "PositiveStreakTopStage", stage: 6, deltas: []int{10, 10, 10}, want: MoodBlissful},
		{name: "PositiveStreakCloseFriend", stage: 3, deltas: []int{10, 10, 10}, want: MoodLoving},
		{name: "PositiveStreakAcquaintance", stage: 1, deltas: []int{10, 10, 10}, want: MoodExcited},
		{name: "PositiveStreakStranger", stage: 0, deltas: []int{10, 10, 10}, want: MoodHappy},
		{name: "ZeroDeltasIgnored", stage: 2, deltas: []int{0, 0, 0}, want: MoodHappy},
		{name: "StageClampedLow", stage: -3, deltas: nil, want: MoodNeutral},
		{name: "StageClampedHigh", stage: 42, deltas: nil, want: MoodBlissful},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineMood(tt.stage, tt.deltas); got != tt.want {
				t.Errorf("DetermineMood(%d, %v) = %v, want %v", tt.stage, tt.deltas, got, tt.want)
			}
		})
	}
}

func TestDetermineMood_Deterministic(t *testing.T) {
	deltas := []int{25, -5, 10, 0, -3}
	first := DetermineMood(3, deltas)
	for i := 0; i < 100; i++ {
		if got := DetermineMood(3, deltas); got != first {
			t.Fatalf("DetermineMood changed between calls: %v then %v", first, got)
		}
	}
}

func TestMoodCatalog(t *testing.T) {
	if len(MoodCatalog) != 10 {
		t.Errorf("MoodCatalog has %d moods, want 10", len(MoodCatalog))
	}
	for name, info := range MoodCatalog {
		if info.Label == "" || info.Emoji == "" || info.Description == "" {
			t.Errorf("mood %q has empty display fields", name)
		}
	}
	for _, base := range stageBaseMoods {
		if _, ok := MoodCatalog[base]; !ok {
			t.Errorf("stage base mood %q missing from catalog", base)
		}
	}
}
