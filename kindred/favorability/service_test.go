package favorability

import (
	"context"
	"errors"
	"testing"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/database/repositories/mock"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

type engineMocks struct {
	relations    *mock.MockRelationRepository
	events       *mock.MockEventLogRepository
	memories     *mock.MockMemoryRepository
	achievements *mock.MockAchievementRepository
}

func newEngine(t *testing.T) (*Service, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		relations:    mock.NewMockRelationRepository(ctrl),
		events:       mock.NewMockEventLogRepository(ctrl),
		memories:     mock.NewMockMemoryRepository(ctrl),
		achievements: mock.NewMockAchievementRepository(ctrl),
	}
	s := NewService(NewDefaultConfig(), m.relations, m.events, m.memories, m.achievements)
	return s, m
}

// expectTransaction makes the mocked Transaction run its callback against a
// zero-value tx, so the locked read and writes inside it are exercised.
func expectTransaction(m engineMocks) {
	m.relations.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
			return fn(ctx, bun.Tx{})
		})
}

func Test_service_ApplyScoreDelta_PromotesAcrossBuffer(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 1, Score: 900, Stage: 5, Mood: MoodDevoted}
	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(1)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)

	var entry *models.EventLog
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ bun.Tx, e *models.EventLog) { entry = e }).
		Return(nil)

	updated, fromStage, err := s.ApplyScoreDelta(context.Background(), 1, 80, ScoreDeltaOptions{
		EventType:         "special_confession",
		Category:          models.EventCategoryConfession,
		CountSpecialEvent: true,
	})
	if err != nil {
		t.Fatalf("ApplyScoreDelta() error = %v", err)
	}

	if updated.Score != 980 {
		t.Errorf("Score = %d, want 980", updated.Score)
	}
	if fromStage != 5 || updated.Stage != 6 {
		t.Errorf("stage %d -> %d, want 5 -> 6", fromStage, updated.Stage)
	}
	if updated.Mood != MoodBlissful {
		t.Errorf("Mood = %q, want %q", updated.Mood, MoodBlissful)
	}
	if updated.SpecialEvents != 1 || updated.TotalMessages != 0 {
		t.Errorf("counters = (%d msgs, %d events), want (0, 1)",
			updated.TotalMessages, updated.SpecialEvents)
	}
	if entry == nil {
		t.Fatal("no event-log entry written")
	}
	if entry.DeltaScore != 80 || entry.EventType != "special_confession" || entry.Category != models.EventCategoryConfession {
		t.Errorf("entry = %+v, want delta 80 special_confession/confession", entry)
	}
}

func Test_service_ApplyScoreDelta_HysteresisHoldsStage(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 2, Score: 140, Stage: 0, Mood: MoodNeutral}
	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	updated, fromStage, err := s.ApplyScoreDelta(context.Background(), 2, 15, ScoreDeltaOptions{
		EventType:    "message",
		Category:     models.EventCategoryMessage,
		CountMessage: true,
	})
	if err != nil {
		t.Fatalf("ApplyScoreDelta() error = %v", err)
	}

	// 155 is past the stage 1 floor but inside the 20-point buffer.
	if updated.Score != 155 {
		t.Errorf("Score = %d, want 155", updated.Score)
	}
	if updated.Stage != 0 || fromStage != 0 {
		t.Errorf("Stage = %d (from %d), want 0", updated.Stage, fromStage)
	}
	if updated.TotalMessages != 1 {
		t.Errorf("TotalMessages = %d, want 1", updated.TotalMessages)
	}
}

func Test_service_ApplyScoreDelta_ClampsAtCeiling(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 3, Score: 990, Stage: 6, Mood: MoodBlissful}
	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	updated, _, err := s.ApplyScoreDelta(context.Background(), 3, 100, ScoreDeltaOptions{
		EventType: "special_proposal",
		Category:  models.EventCategoryConfession,
	})
	if err != nil {
		t.Fatalf("ApplyScoreDelta() error = %v", err)
	}
	if updated.Score != 1000 {
		t.Errorf("Score = %d, want 1000", updated.Score)
	}
}

func Test_service_ApplyScoreDelta_MissingRelation(t *testing.T) {
	s, m := newEngine(t)

	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(404)).
		Return(nil, &repositories.NotFoundError{Entity: "relation", ID: int64(404)})

	_, _, err := s.ApplyScoreDelta(context.Background(), 404, 10, ScoreDeltaOptions{})
	if !errors.Is(err, ErrRelationNotFound) {
		t.Errorf("error = %v, want ErrRelationNotFound", err)
	}
}

func Test_service_ProcessSpecialEvent_UnknownTypeGetsDefaultDelta(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 7, UserID: "u1", CharacterID: "yuki", Score: 100, Stage: 0, Mood: MoodNeutral}
	m.relations.EXPECT().
		GetByUserAndCharacter(gomock.Any(), "u1", "yuki").
		Return(relation, nil)

	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)

	var entry *models.EventLog
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ bun.Tx, e *models.EventLog) { entry = e }).
		Return(nil)

	// Post-commit hooks: no memory template matches, no achievement
	// condition is satisfied at these counters.
	m.relations.EXPECT().GetByID(gomock.Any(), int64(7)).Return(relation, nil)
	m.achievements.EXPECT().ListByRelation(gomock.Any(), int64(7)).Return(nil, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(7), models.EventCategoryGift).
		Return(0, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(7), models.EventCategoryDate).
		Return(0, nil)

	result, err := s.ProcessSpecialEvent(context.Background(), "u1", "yuki", "mystery_box", "a mystery", nil)
	if err != nil {
		t.Fatalf("ProcessSpecialEvent() error = %v", err)
	}

	if result.DeltaScore != 10 {
		t.Errorf("DeltaScore = %d, want default 10", result.DeltaScore)
	}
	if result.Relation.Score != 110 {
		t.Errorf("Score = %d, want 110", result.Relation.Score)
	}
	if entry == nil || entry.EventType != "special_mystery_box" || entry.Category != models.EventCategoryOther {
		t.Errorf("entry = %+v, want special_mystery_box/other", entry)
	}
	if len(result.NewAchievements) != 0 {
		t.Errorf("NewAchievements = %v, want none", result.NewAchievements)
	}
	for _, se := range result.SideEffects {
		if se.Err != nil {
			t.Errorf("side effect %s failed: %v", se.Name, se.Err)
		}
	}
}

func Test_service_ProcessSpecialEvent_ConfessionUnlocksAndRemembers(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 1, UserID: "u1", CharacterID: "yuki", Score: 900, Stage: 5, Mood: MoodDevoted}
	m.relations.EXPECT().
		GetByUserAndCharacter(gomock.Any(), "u1", "yuki").
		Return(relation, nil)

	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(1)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)
	m.events.EXPECT().
		CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	// Memory recorder: the confession memory plus a stage-up memory for the
	// 5 -> 6 transition.
	var memoryTypes []string
	m.memories.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, mem *models.Memory) { memoryTypes = append(memoryTypes, mem.MemoryType) }).
		Return(nil).
		Times(2)

	// Achievement checker: every stage milestone up to Soulmate is now due.
	m.relations.EXPECT().GetByID(gomock.Any(), int64(1)).Return(relation, nil)
	m.achievements.EXPECT().ListByRelation(gomock.Any(), int64(1)).Return(nil, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(1), models.EventCategoryGift).
		Return(0, nil)
	m.events.EXPECT().
		CountPositiveByCategory(gomock.Any(), int64(1), models.EventCategoryDate).
		Return(0, nil)
	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, &repositories.NotFoundError{Entity: "achievement", ID: "x"}).
		Times(6)
	m.achievements.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Achievement) (*models.Achievement, bool, error) {
			return a, true, nil
		}).
		Times(6)

	result, err := s.ProcessSpecialEvent(context.Background(), "u1", "yuki", "confession", "", nil)
	if err != nil {
		t.Fatalf("ProcessSpecialEvent() error = %v", err)
	}

	if result.DeltaScore != 80 {
		t.Errorf("DeltaScore = %d, want 80", result.DeltaScore)
	}
	if result.Relation.Score != 980 || result.Relation.Stage != 6 {
		t.Errorf("relation = score %d stage %d, want 980/6", result.Relation.Score, result.Relation.Stage)
	}
	if len(result.NewAchievements) != 6 {
		t.Errorf("unlocked %d achievements, want 6", len(result.NewAchievements))
	}
	if len(memoryTypes) != 2 {
		t.Fatalf("created %d memories, want 2 (%v)", len(memoryTypes), memoryTypes)
	}
	seen := map[string]bool{}
	for _, mt := range memoryTypes {
		seen[mt] = true
	}
	if !seen[models.MemoryTypeConfession] || !seen[models.MemoryTypeStageUp] {
		t.Errorf("memory types = %v, want confession and stage_up", memoryTypes)
	}
}

func Test_service_UnlockAchievement_Idempotent(t *testing.T) {
	s, m := newEngine(t)

	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(1), "first_gift").
		Return(nil, &repositories.NotFoundError{Entity: "achievement", ID: "first_gift"})
	m.achievements.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Achievement) (*models.Achievement, bool, error) {
			return a, true, nil
		})

	first, created, err := s.UnlockAchievement(context.Background(), 1, "first_gift")
	if err != nil {
		t.Fatalf("UnlockAchievement() error = %v", err)
	}
	if !created {
		t.Error("first unlock reported created = false")
	}
	if first.Title != "First Gift" || first.Icon == "" {
		t.Errorf("unlocked achievement = %+v, want catalog fields filled", first)
	}

	m.achievements.EXPECT().
		GetByRelationAndID(gomock.Any(), int64(1), "first_gift").
		Return(first, nil)

	second, created, err := s.UnlockAchievement(context.Background(), 1, "first_gift")
	if err != nil {
		t.Fatalf("UnlockAchievement() second call error = %v", err)
	}
	if created {
		t.Error("second unlock reported created = true")
	}
	if second != first {
		t.Error("second unlock did not return the existing record")
	}
}

func Test_service_UnlockAchievement_UnknownID(t *testing.T) {
	s, _ := newEngine(t)

	_, _, err := s.UnlockAchievement(context.Background(), 1, "not_in_catalog")
	if !errors.Is(err, ErrUnknownAchievement) {
		t.Errorf("error = %v, want ErrUnknownAchievement", err)
	}
}

func Test_service_GetRelation_NotFound(t *testing.T) {
	s, m := newEngine(t)

	m.relations.EXPECT().
		GetByUserAndCharacter(gomock.Any(), "u1", "ghost").
		Return(nil, &repositories.NotFoundError{Entity: "relation", ID: "u1:ghost"})

	_, err := s.GetRelation(context.Background(), "u1", "ghost")
	if !errors.Is(err, ErrRelationNotFound) {
		t.Errorf("error = %v, want ErrRelationNotFound", err)
	}
}

func Test_service_RefreshMood(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 9, Stage: 3, Mood: MoodExcited}
	m.relations.EXPECT().GetByID(gomock.Any(), int64(9)).Return(relation, nil)
	m.events.EXPECT().
		ListRecentDeltas(gomock.Any(), int64(9), 10).
		Return([]int{-5, -3, 2}, nil)

	// Negative majority at stage 3 degrades to disappointed; the change is
	// persisted through the usual locked update.
	expectTransaction(m)
	m.relations.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(9)).
		Return(relation, nil)
	m.relations.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), relation).
		Return(nil)

	mood, err := s.RefreshMood(context.Background(), 9, "")
	if err != nil {
		t.Fatalf("RefreshMood() error = %v", err)
	}
	if mood != MoodDisappointed {
		t.Errorf("mood = %q, want %q", mood, MoodDisappointed)
	}
}

func Test_service_RefreshMood_NoChangeSkipsWrite(t *testing.T) {
	s, m := newEngine(t)

	relation := &models.Relation{ID: 9, Stage: 3, Mood: MoodExcited}
	m.relations.EXPECT().GetByID(gomock.Any(), int64(9)).Return(relation, nil)
	m.events.EXPECT().
		ListRecentDeltas(gomock.Any(), int64(9), 10).
		Return([]int{5, -5}, nil)

	mood, err := s.RefreshMood(context.Background(), 9, "")
	if err != nil {
		t.Fatalf("RefreshMood() error = %v", err)
	}
	if mood != MoodExcited {
		t.Errorf("mood = %q, want unchanged %q", mood, MoodExcited)
	}
}
