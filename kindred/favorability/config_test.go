package favorability

import (
	"testing"

	"github.com/kindredchat/kindred/kindred/database/models"
)

func TestConfig_DeltaFor(t *testing.T) {
	cfg := NewDefaultConfig()

	tests := []struct {
		eventType string
		want      int
	}{
		{eventType: "flower", want: 25},
		{eventType: "chocolate", want: 20},
		{eventType: "jewelry", want: 50},
		{eventType: "date_cafe", want: 30},
		{eventType: "date_movie", want: 35},
		{eventType: "date_dinner", want: 45},
		{eventType: "surprise", want: 60},
		{eventType: "confession", want: 80},
		{eventType: "proposal", want: 100},
		{eventType: "anything_else", want: 10},
		{eventType: "", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			if got := cfg.DeltaFor(tt.eventType); got != tt.want {
				t.Errorf("DeltaFor(%q) = %d, want %d", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestConfig_Clamp(t *testing.T) {
	cfg := NewDefaultConfig()

	tests := []struct {
		score int
		want  int
	}{
		{score: -50, want: 0},
		{score: 0, want: 0},
		{score: 500, want: 500},
		{score: 1000, want: 1000},
		{score: 1080, want: 1000},
	}

	for _, tt := range tests {
		if got := cfg.Clamp(tt.score); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		eventType string
		want      string
	}{
		{eventType: "flower", want: models.EventCategoryGift},
		{eventType: "surprise", want: models.EventCategoryGift},
		{eventType: "date_movie", want: models.EventCategoryDate},
		{eventType: "confession", want: models.EventCategoryConfession},
		{eventType: "proposal", want: models.EventCategoryConfession},
		{eventType: "mystery", want: models.EventCategoryOther},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.eventType); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.eventType, got, tt.want)
		}
	}
}
