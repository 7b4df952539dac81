package favorability

import (
	"context"
	"testing"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"go.uber.org/mock/gomock"
)

func Test_service_GetRelationStats(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{
		ID:            5,
		Score:         720,
		Stage:         4,
		Mood:          MoodLoving,
		TotalMessages: 340,
		SpecialEvents: 12,
		CreatedAt:     time.Now().Add(-72 * time.Hour),
		LastEventAt:   time.Now().Add(-26 * time.Hour),
	}
	m.relations.EXPECT().GetByID(gomock.Any(), int64(5)).Return(relation, nil)
	m.events.EXPECT().CountSigned(gomock.Any(), int64(5)).Return(50, 4, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(5), models.EventCategoryGift).
		Return(8, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(5), models.EventCategoryDate).
		Return(3, nil)
	m.memories.EXPECT().CountHighlights(gomock.Any(), int64(5)).Return(6, nil)

	summary, err := s.GetRelationStats(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetRelationStats() error = %v", err)
	}

	if summary.Score != 720 || summary.Stage.Label != "Sweetheart" {
		t.Errorf("score/stage = %d/%s, want 720/Sweetheart", summary.Score, summary.Stage.Label)
	}
	if summary.PositiveEvents != 50 || summary.NegativeEvents != 4 {
		t.Errorf("signed counts = %d/%d, want 50/4", summary.PositiveEvents, summary.NegativeEvents)
	}
	if summary.GiftEvents != 8 || summary.DateEvents != 3 || summary.HighlightMemories != 6 {
		t.Errorf("aggregates = %d gifts %d dates %d highlights",
			summary.GiftEvents, summary.DateEvents, summary.HighlightMemories)
	}
	if summary.DaysSinceFirstContact != 3 {
		t.Errorf("DaysSinceFirstContact = %d, want 3", summary.DaysSinceFirstContact)
	}
	if summary.DaysSinceLastEvent != 1 {
		t.Errorf("DaysSinceLastEvent = %d, want 1", summary.DaysSinceLastEvent)
	}
}

func Test_daysBetween(t *testing.T) {
	now := time.Now()
	if got := daysBetween(now.Add(-49*time.Hour), now); got != 2 {
		t.Errorf("daysBetween(49h) = %d, want 2", got)
	}
	if got := daysBetween(now.Add(time.Hour), now); got != 0 {
		t.Errorf("daysBetween(future) = %d, want 0", got)
	}
}
