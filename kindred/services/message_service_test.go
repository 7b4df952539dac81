package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/database/repositories/mock"
	"github.com/kindredchat/kindred/kindred/favorability"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

// stubReplier fakes the model backend with canned outputs.
type stubReplier struct {
	reply    string
	score    int
	scoreErr error
}

func (s *stubReplier) GenerateReply(_ context.Context, _ *models.Relation, _ string) (string, error) {
	return s.reply, nil
}

func (s *stubReplier) ScoreMessage(_ context.Context, _ string) (int, error) {
	return s.score, s.scoreErr
}

type serviceMocks struct {
	relations    *mock.MockRelationRepository
	events       *mock.MockEventLogRepository
	memories     *mock.MockMemoryRepository
	achievements *mock.MockAchievementRepository
}

func newMessageService(t *testing.T, replier ReplyGenerator) (*MessageService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		relations:    mock.NewMockRelationRepository(ctrl),
		events:       mock.NewMockEventLogRepository(ctrl),
		memories:     mock.NewMockMemoryRepository(ctrl),
		achievements: mock.NewMockAchievementRepository(ctrl),
	}
	engine := favorability.NewService(favorability.NewDefaultConfig(),
		m.relations, m.events, m.memories, m.achievements)
	return NewMessageService(m.relations, engine, replier), m
}

func expectDeltaTransaction(m serviceMocks, relation *models.Relation) {
	m.relations.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		})
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), relation.ID).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
}

func Test_messageService_RecordMessage(t *testing.T) {
	replier := &stubReplier{reply: "I was hoping you'd come back.", score: 3}
	s, m := newMessageService(t, replier)

	relation := &models.Relation{ID: 1, UserID: "u1", CharacterID: "yuki", Score: 200, Stage: 1, Mood: favorability.MoodFriendly}
	m.relations.EXPECT().
		GetOrCreate(gomock.Any(), "u1", "yuki").
		Return(relation, false, nil)
	expectDeltaTransaction(m, relation)

	// Achievement pass after the delta: first message unlocks first_words.
	m.relations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(relation, nil)
	m.achievements.EXPECT().ListByRelation(gomock.Any(), int64(1)).Return(nil, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(1), models.EventCategoryGift).
		Return(0, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(1), models.EventCategoryDate).
		Return(0, nil)
	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(1), "first_words").
		Return(nil, &repositories.NotFoundError{Entity: "achievement", ID: "first_words"})
	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(1), "getting_closer").
		Return(nil, &repositories.NotFoundError{Entity: "achievement", ID: "getting_closer"})
	m.achievements.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Achievement) (*models.Achievement, bool, error) {
			return a, true, nil
		}).
		Times(2)

	result, err := s.RecordMessage(context.Background(), "u1", "yuki", "I missed you")
	if err != nil {
		t.Fatalf("RecordMessage() error = %v", err)
	}

	if result.DeltaScore != 3 {
		t.Errorf("DeltaScore = %d, want 3", result.DeltaScore)
	}
	if result.Relation.Score != 203 {
		t.Errorf("Score = %d, want 203", result.Relation.Score)
	}
	if result.Relation.TotalMessages != 1 {
		t.Errorf("TotalMessages = %d, want 1", result.Relation.TotalMessages)
	}
	if result.Reply != replier.reply {
		t.Errorf("Reply = %q, want %q", result.Reply, replier.reply)
	}
	if result.FirstContact {
		t.Error("FirstContact = true for existing relation")
	}
	if len(result.NewAchievements) != 2 {
		t.Errorf("unlocked %d achievements, want 2", len(result.NewAchievements))
	}
}

func Test_messageService_RecordMessage_FirstContact(t *testing.T) {
	replier := &stubReplier{reply: "Oh! Hello there.", scoreErr: errors.New("model unavailable")}
	s, m := newMessageService(t, replier)

	relation := &models.Relation{ID: 2, UserID: "u2", CharacterID: "yuki", Mood: favorability.MoodNeutral}
	m.relations.EXPECT().
		GetOrCreate(gomock.Any(), "u2", "yuki").
		Return(relation, true, nil)

	// First contact records a first-meet memory and a zero-delta log entry.
	m.memories.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, mem *models.Memory) {
			if mem.MemoryType != models.MemoryTypeFirstMeet {
				t.Errorf("memory type = %q, want first_meet", mem.MemoryType)
			}
		}).
		Return(nil)
	m.events.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e *models.EventLog) {
			if e.Category != models.EventCategorySystem || e.DeltaScore != 0 {
				t.Errorf("first-contact entry = %+v, want system/0", e)
			}
		}).
		Return(nil)

	expectDeltaTransaction(m, relation)

	// Scoring failed, so the message lands with delta 0 and still counts.
	m.relations.EXPECT().GetByID(gomock.Any(), int64(2)).Return(relation, nil)
	m.achievements.EXPECT().ListByRelation(gomock.Any(), int64(2)).Return(nil, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(2), models.EventCategoryGift).
		Return(0, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(2), models.EventCategoryDate).
		Return(0, nil)
	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(2), "first_words").
		Return(nil, &repositories.NotFoundError{Entity: "achievement", ID: "first_words"})
	m.achievements.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Achievement) (*models.Achievement, bool, error) {
			return a, true, nil
		})

	result, err := s.RecordMessage(context.Background(), "u2", "yuki", "hi")
	if err != nil {
		t.Fatalf("RecordMessage() error = %v", err)
	}

	if !result.FirstContact {
		t.Error("FirstContact = false for new relation")
	}
	if result.DeltaScore != 0 {
		t.Errorf("DeltaScore = %d, want 0 after scoring failure", result.DeltaScore)
	}
	if result.Relation.TotalMessages != 1 {
		t.Errorf("TotalMessages = %d, want 1", result.Relation.TotalMessages)
	}
}
