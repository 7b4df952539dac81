package services

import (
	"context"
	"log/slog"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/favorability"
)

// ReplyGenerator produces character replies and message scores. Satisfied by
// ReplyService; an interface so the model backend can be swapped in tests.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, relation *models.Relation, userMessage string) (string, error)
	ScoreMessage(ctx context.Context, userMessage string) (int, error)
}

// MessageService is the regular-message entry point into the favorability
// engine. It shares ApplyScoreDelta with the special-event path, so stage
// hysteresis and mood rules apply identically to both.
type MessageService struct {
	relations repositories.RelationRepository
	engine    *favorability.Service
	replies   ReplyGenerator
}

func NewMessageService(relations repositories.RelationRepository, engine *favorability.Service, replies ReplyGenerator) *MessageService {
	return &MessageService{
		relations: relations,
		engine:    engine,
		replies:   replies,
	}
}

// MessageResult is the outcome of one user message.
type MessageResult struct {
	Relation        *models.Relation
	Reply           string
	DeltaScore      int
	FirstContact    bool
	NewAchievements []*models.Achievement
}

// RecordMessage handles one user message: lazily creates the relation on
// first contact, scores the message, applies the delta through the engine,
// and generates the character's reply. Scoring failures degrade to a zero
// delta; the message is still counted and answered.
func (s *MessageService) RecordMessage(ctx context.Context, userID, characterID, content string) (*MessageResult, error) {
	relation, created, err := s.relations.GetOrCreate(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if created {
		if err := s.engine.RecordFirstContact(ctx, relation); err != nil {
			slog.Warn("Failed to record first contact",
				slog.String("type", "engine"),
				slog.Int64("relation_id", relation.ID),
				slog.Any("error", err))
		}
	}

	delta, err := s.replies.ScoreMessage(ctx, content)
	if err != nil {
		slog.Warn("Message scoring failed, using zero delta",
			slog.String("type", "engine"),
			slog.Int64("relation_id", relation.ID),
			slog.Any("error", err))
		delta = 0
	}

	updated, fromStage, err := s.engine.ApplyScoreDelta(ctx, relation.ID, delta, favorability.ScoreDeltaOptions{
		EventType:    "message",
		Category:     models.EventCategoryMessage,
		Description:  "chat message",
		CountMessage: true,
	})
	if err != nil {
		return nil, err
	}

	result := &MessageResult{
		Relation:     updated,
		DeltaScore:   delta,
		FirstContact: created,
	}

	// Best-effort follow-ups, same isolation as the special-event path.
	if updated.Stage > fromStage {
		mctx := favorability.MemoryContext{
			CharacterName: updated.CharacterID,
			FromStage:     fromStage,
			ToStage:       updated.Stage,
		}
		if _, err := s.engine.AutoCreateMemory(ctx, updated.ID, "stage_up", mctx); err != nil {
			slog.Warn("Failed to create stage-up memory",
				slog.String("type", "engine"),
				slog.Int64("relation_id", updated.ID),
				slog.Any("error", err))
		}
	}
	if unlocked, err := s.engine.CheckAndUnlockAchievements(ctx, updated.ID); err != nil {
		slog.Warn("Achievement check failed",
			slog.String("type", "engine"),
			slog.Int64("relation_id", updated.ID),
			slog.Any("error", err))
	} else {
		result.NewAchievements = unlocked
	}

	reply, err := s.replies.GenerateReply(ctx, updated, content)
	if err != nil {
		return nil, err
	}
	result.Reply = reply
	return result, nil
}
