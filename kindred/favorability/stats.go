package favorability

import (
	"context"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
)

// GetRelationStats assembles the derived stats view for one relation:
// counters, event aggregates, highlight memory count and contact recency.
func (s *Service) GetRelationStats(ctx context.Context, relationID int64) (*StatsSummary, error) {
	relation, err := s.relations.GetByID(ctx, relationID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrRelationNotFound
		}
		return nil, err
	}

	positive, negative, err := s.events.CountSigned(ctx, relationID)
	if err != nil {
		return nil, err
	}
	gifts, err := s.events.CountPositiveByCategory(ctx, relationID, models.EventCategoryGift)
	if err != nil {
		return nil, err
	}
	dates, err := s.events.CountPositiveByCategory(ctx, relationID, models.EventCategoryDate)
	if err != nil {
		return nil, err
	}
	highlights, err := s.memories.CountHighlights(ctx, relationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &StatsSummary{
		Score:                 relation.Score,
		Stage:                 StageByIndex(relation.Stage),
		Mood:                  relation.Mood,
		TotalMessages:         relation.TotalMessages,
		SpecialEvents:         relation.SpecialEvents,
		PositiveEvents:        positive,
		NegativeEvents:        negative,
		GiftEvents:            gifts,
		DateEvents:            dates,
		HighlightMemories:     highlights,
		DaysSinceFirstContact: daysBetween(relation.CreatedAt, now),
	}
	if !relation.LastEventAt.IsZero() {
		summary.DaysSinceLastEvent = daysBetween(relation.LastEventAt, now)
	}
	return summary, nil
}

func daysBetween(from, to time.Time) int {
	if from.After(to) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
