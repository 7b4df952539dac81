package favorability

import "testing"

func TestUnlockCondition_Met(t *testing.T) {
	tests := []struct {
		name      string
		condition UnlockCondition
		stats     ConditionStats
		want      bool
	}{
		{
			name:      "EmptyConditionAlwaysMet",
			condition: UnlockCondition{},
			stats:     ConditionStats{},
			want:      true,
		},
		{
			name:      "MessagesMet",
			condition: UnlockCondition{Messages: 100},
			stats:     ConditionStats{Messages: 100},
			want:      true,
		},
		{
			name:      "MessagesNotMet",
			condition: UnlockCondition{Messages: 100},
			stats:     ConditionStats{Messages: 99},
			want:      false,
		},
		{
			name:      "StageMet",
			condition: UnlockCondition{Stage: 4},
			stats:     ConditionStats{Stage: 6},
			want:      true,
		},
		{
			name:      "ConjunctionAllMet",
			condition: UnlockCondition{Stage: 4, Gifts: 5, Dates: 5},
			stats:     ConditionStats{Stage: 4, Gifts: 5, Dates: 5},
			want:      true,
		},
		{
			name:      "ConjunctionOneShort",
			condition: UnlockCondition{Stage: 4, Gifts: 5, Dates: 5},
			stats:     ConditionStats{Stage: 6, Gifts: 5, Dates: 4},
			want:      false,
		},
		{
			name:      "UnrelatedStatsIgnored",
			condition: UnlockCondition{Gifts: 1},
			stats:     ConditionStats{Stage: 0, Messages: 0, Gifts: 1, Dates: 0},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.condition.Met(tt.stats); got != tt.want {
				t.Errorf("Met(%+v) = %v, want %v", tt.stats, got, tt.want)
			}
		})
	}
}

func TestAchievementCatalog(t *testing.T) {
	if len(AchievementCatalog) < 10 {
		t.Fatalf("catalog has %d entries, want at least 10", len(AchievementCatalog))
	}

	seen := make(map[string]struct{}, len(AchievementCatalog))
	for _, entry := range AchievementCatalog {
		if entry.ID == "" || entry.Title == "" || entry.Description == "" || entry.Icon == "" {
			t.Errorf("entry %q has empty fields", entry.ID)
		}
		if _, dup := seen[entry.ID]; dup {
			t.Errorf("duplicate achievement id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}

		empty := UnlockCondition{}
		if entry.Condition == empty {
			t.Errorf("entry %q has no unlock condition", entry.ID)
		}
	}
}

func TestCatalogEntryByID(t *testing.T) {
	entry, ok := CatalogEntryByID("perfect_partner")
	if !ok {
		t.Fatal("perfect_partner not found in catalog")
	}
	want := UnlockCondition{Stage: 4, Gifts: 5, Dates: 5}
	if entry.Condition != want {
		t.Errorf("perfect_partner condition = %+v, want %+v", entry.Condition, want)
	}

	if _, ok := CatalogEntryByID("no_such_id"); ok {
		t.Error("CatalogEntryByID(no_such_id) = true, want false")
	}
}
