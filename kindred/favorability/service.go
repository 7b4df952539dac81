package favorability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/logger"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRelationNotFound   = errors.New("relation not found")
	ErrUnknownAchievement = errors.New("unknown achievement id")
)

// Service is the favorability engine: the single owner of score, stage and
// mood mutations for a relation. Both special events and the regular
// message-scoring path go through ApplyScoreDelta, so stage hysteresis is
// applied consistently regardless of where a delta comes from.
type Service struct {
	config       *Config
	relations    repositories.RelationRepository
	events       repositories.EventLogRepository
	memories     repositories.MemoryRepository
	achievements repositories.AchievementRepository
}

func NewService(
	config *Config,
	relations repositories.RelationRepository,
	events repositories.EventLogRepository,
	memories repositories.MemoryRepository,
	achievements repositories.AchievementRepository,
) *Service {
	return &Service{
		config:       config,
		relations:    relations,
		events:       events,
		memories:     memories,
		achievements: achievements,
	}
}

func (s *Service) Config() *Config {
	return s.config
}

// GetRelation returns the relation for a (user, character) pair, mapping a
// missing row to ErrRelationNotFound.
func (s *Service) GetRelation(ctx context.Context, userID, characterID string) (*models.Relation, error) {
	relation, err := s.relations.GetByUserAndCharacter(ctx, userID, characterID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrRelationNotFound
		}
		return nil, err
	}
	return relation, nil
}

// ScoreDeltaOptions describe the event-log entry written alongside a score
// change and which relation counters the change bumps.
type ScoreDeltaOptions struct {
	EventType         string
	Category          string
	Description       string
	Metadata          map[string]interface{}
	CountMessage      bool
	CountSpecialEvent bool
}

// ApplyScoreDelta is the only mutator of score and stage. It runs the score
// update, the stage hysteresis check, the mood recompute and the event-log
// append in one transaction behind a row lock, so concurrent deltas for the
// same relation serialize and none is lost. Returns the updated relation and
// the stage held before the update.
func (s *Service) ApplyScoreDelta(ctx context.Context, relationID int64, delta int, opts ScoreDeltaOptions) (*models.Relation, int, error) {
	var updated *models.Relation
	var fromStage int

	err := s.relations.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		relation, err := s.relations.GetForUpdateTx(ctx, tx, relationID)
		if err != nil {
			return err
		}

		fromStage = relation.Stage
		relation.Score = s.config.Clamp(relation.Score + delta)
		if ShouldTransition(relation.Stage, relation.Score, s.config.StageBufferSize) {
			relation.Stage = ResolveStage(relation.Score)
		}
		// Mood reacts to this event alone; the broader history window is
		// consulted by RefreshMood.
		relation.Mood = DetermineMood(relation.Stage, []int{delta})
		relation.LastEventAt = time.Now()
		if opts.CountMessage {
			relation.TotalMessages++
		}
		if opts.CountSpecialEvent {
			relation.SpecialEvents++
		}

		if err := s.relations.UpdateTx(ctx, tx, relation); err != nil {
			return err
		}

		entry := &models.EventLog{
			RelationID:  relation.ID,
			EventType:   opts.EventType,
			Category:    opts.Category,
			DeltaScore:  delta,
			Description: opts.Description,
			Metadata:    opts.Metadata,
		}
		if err := s.events.CreateTx(ctx, tx, entry); err != nil {
			return err
		}

		updated = relation
		return nil
	})
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, 0, ErrRelationNotFound
		}
		return nil, 0, fmt.Errorf("failed to apply score delta: %w", err)
	}

	return updated, fromStage, nil
}

// ProcessSpecialEvent applies a scored special event (gift, date, confession,
// ...) to the relation between userID and characterID. The score update and
// event-log append are atomic; memory creation and achievement checks run
// after commit and their failures are reported in SideEffects without
// failing the event.
func (s *Service) ProcessSpecialEvent(ctx context.Context, userID, characterID, eventType, description string, metadata map[string]interface{}) (*EventResult, error) {
	relation, err := s.GetRelation(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	delta := s.config.DeltaFor(eventType)
	updated, fromStage, err := s.ApplyScoreDelta(ctx, relation.ID, delta, ScoreDeltaOptions{
		EventType:         "special_" + eventType,
		Category:          CategoryFor(eventType),
		Description:       description,
		Metadata:          metadata,
		CountSpecialEvent: true,
	})
	if err != nil {
		return nil, err
	}

	result := &EventResult{
		Relation:   updated,
		DeltaScore: delta,
		EventType:  eventType,
	}
	result.NewAchievements, result.SideEffects = s.runPostCommitHooks(ctx, updated, eventType, fromStage)
	return result, nil
}

// runPostCommitHooks runs the best-effort side effects of a committed event.
// Each hook is isolated: a failure is logged and captured, never propagated.
func (s *Service) runPostCommitHooks(ctx context.Context, relation *models.Relation, eventType string, fromStage int) ([]*models.Achievement, []HookResult) {
	var (
		g       errgroup.Group
		mu      sync.Mutex
		results []HookResult
		newly   []*models.Achievement
	)

	record := func(name string, err error) {
		mu.Lock()
		results = append(results, HookResult{Name: name, Err: err})
		mu.Unlock()
		if err != nil {
			logger.LogError("Post-commit hook failed", err, "hook", name, "relation_id", relation.ID)
		}
	}

	g.Go(func() error {
		err := s.recordEventMemories(ctx, relation, eventType, fromStage)
		record("memory_recorder", err)
		return nil
	})
	g.Go(func() error {
		unlocked, err := s.CheckAndUnlockAchievements(ctx, relation.ID)
		if err == nil {
			mu.Lock()
			newly = unlocked
			mu.Unlock()
		}
		record("achievement_checker", err)
		return nil
	})
	g.Wait()

	return newly, results
}

// recordEventMemories creates the auto memories a special event warrants:
// the event's own template, plus a stage_up memory when the event pushed the
// relation over a stage boundary.
func (s *Service) recordEventMemories(ctx context.Context, relation *models.Relation, eventType string, fromStage int) error {
	mctx := MemoryContext{
		CharacterName: relation.CharacterID,
		FromStage:     fromStage,
		ToStage:       relation.Stage,
	}

	var firstErr error
	if _, err := s.AutoCreateMemory(ctx, relation.ID, memoryEventKeyFor(eventType, &mctx), mctx); err != nil {
		firstErr = err
	}
	if relation.Stage > fromStage {
		if _, err := s.AutoCreateMemory(ctx, relation.ID, "stage_up", mctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// memoryEventKeyFor maps a raw special event type onto a memory template
// key, filling in the interpolation fields as a side effect.
func memoryEventKeyFor(eventType string, mctx *MemoryContext) string {
	switch CategoryFor(eventType) {
	case models.EventCategoryGift:
		mctx.GiftType = eventType
		return "special_gift"
	case models.EventCategoryDate:
		mctx.DateType = strings.TrimPrefix(eventType, "date_")
		return "romantic_date"
	case models.EventCategoryConfession:
		return "confession"
	default:
		return eventType
	}
}

// UpdateMood persists a new mood on the relation. When a reason is given,
// the change is also recorded as a mood_change event-log entry carrying the
// old and new mood.
func (s *Service) UpdateMood(ctx context.Context, relationID int64, newMood, reason string) error {
	err := s.relations.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		relation, err := s.relations.GetForUpdateTx(ctx, tx, relationID)
		if err != nil {
			return err
		}

		oldMood := relation.Mood
		relation.Mood = newMood
		relation.LastEventAt = time.Now()
		if err := s.relations.UpdateTx(ctx, tx, relation); err != nil {
			return err
		}

		if reason == "" {
			return nil
		}
		return s.events.CreateTx(ctx, tx, &models.EventLog{
			RelationID:  relation.ID,
			EventType:   "mood_change",
			Category:    models.EventCategoryMood,
			Description: reason,
			Metadata: map[string]interface{}{
				"old_mood": oldMood,
				"new_mood": newMood,
			},
		})
	})
	if err != nil {
		if repositories.IsNotFound(err) {
			return ErrRelationNotFound
		}
		return fmt.Errorf("failed to update mood: %w", err)
	}
	return nil
}

// RefreshMood recomputes the mood from the recent event-log window and
// persists it when it changed.
func (s *Service) RefreshMood(ctx context.Context, relationID int64, reason string) (string, error) {
	relation, err := s.relations.GetByID(ctx, relationID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return "", ErrRelationNotFound
		}
		return "", err
	}

	deltas, err := s.events.ListRecentDeltas(ctx, relationID, s.config.MoodEventWindow)
	if err != nil {
		return "", err
	}

	mood := DetermineMood(relation.Stage, deltas)
	if mood == relation.Mood {
		return mood, nil
	}
	return mood, s.UpdateMood(ctx, relationID, mood, reason)
}

// UnlockAchievement idempotently unlocks one catalog achievement for a
// relation. Calling it again for an already-unlocked id returns the
// existing record.
func (s *Service) UnlockAchievement(ctx context.Context, relationID int64, achievementID string) (*models.Achievement, bool, error) {
	entry, ok := CatalogEntryByID(achievementID)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownAchievement, achievementID)
	}

	existing, err := s.achievements.GetByRelationAndID(ctx, relationID, achievementID)
	if err == nil {
		return existing, false, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, false, err
	}

	return s.achievements.Insert(ctx, &models.Achievement{
		RelationID:    relationID,
		AchievementID: entry.ID,
		Title:         entry.Title,
		Description:   entry.Description,
		Icon:          entry.Icon,
		Category:      entry.Category,
	})
}

// CheckAndUnlockAchievements evaluates every not-yet-unlocked catalog entry
// against the relation's current counters and unlocks the satisfied ones.
// Returns only the achievements newly unlocked by this call.
func (s *Service) CheckAndUnlockAchievements(ctx context.Context, relationID int64) ([]*models.Achievement, error) {
	relation, err := s.relations.GetByID(ctx, relationID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrRelationNotFound
		}
		return nil, err
	}

	unlocked, err := s.achievements.ListByRelation(ctx, relationID)
	if err != nil {
		return nil, err
	}
	unlockedSet := make(map[string]struct{}, len(unlocked))
	for _, a := range unlocked {
		unlockedSet[a.AchievementID] = struct{}{}
	}

	stats, err := s.conditionStats(ctx, relation)
	if err != nil {
		return nil, err
	}

	var newly []*models.Achievement
	for _, entry := range AchievementCatalog {
		if _, ok := unlockedSet[entry.ID]; ok {
			continue
		}
		if !entry.Condition.Met(stats) {
			continue
		}
		achievement, created, err := s.UnlockAchievement(ctx, relationID, entry.ID)
		if err != nil {
			return newly, err
		}
		if created {
			newly = append(newly, achievement)
		}
	}
	return newly, nil
}

func (s *Service) conditionStats(ctx context.Context, relation *models.Relation) (ConditionStats, error) {
	gifts, err := s.events.CountPositiveByCategory(ctx, relation.ID, models.EventCategoryGift)
	if err != nil {
		return ConditionStats{}, err
	}
	dates, err := s.events.CountPositiveByCategory(ctx, relation.ID, models.EventCategoryDate)
	if err != nil {
		return ConditionStats{}, err
	}
	return ConditionStats{
		Stage:    relation.Stage,
		Messages: int(relation.TotalMessages),
		Gifts:    gifts,
		Dates:    dates,
	}, nil
}

// CreateMemory persists a caller-described memory.
func (s *Service) CreateMemory(ctx context.Context, relationID int64, params CreateMemoryParams) (*models.Memory, error) {
	memory := &models.Memory{
		RelationID:  relationID,
		Title:       params.Title,
		Description: params.Description,
		MemoryType:  params.MemoryType,
		Importance:  params.Importance,
		IsHighlight: params.IsHighlight,
		MessageID:   params.MessageID,
		Metadata:    params.Metadata,
	}
	if err := s.memories.Create(ctx, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// RecordFirstContact marks the moment a relation was created: a first-meet
// memory plus a zero-delta system entry in the event log.
func (s *Service) RecordFirstContact(ctx context.Context, relation *models.Relation) error {
	mctx := MemoryContext{CharacterName: relation.CharacterID}
	if _, err := s.AutoCreateMemory(ctx, relation.ID, "first_meet", mctx); err != nil {
		return err
	}
	return s.events.Create(ctx, &models.EventLog{
		RelationID:  relation.ID,
		EventType:   "first_meet",
		Category:    models.EventCategorySystem,
		DeltaScore:  0,
		Description: "first contact",
	})
}

// AutoCreateMemory creates a templated memory for a known special moment.
// Event types without a template return (nil, nil): a no-op, not an error.
func (s *Service) AutoCreateMemory(ctx context.Context, relationID int64, eventType string, mctx MemoryContext) (*models.Memory, error) {
	memory := BuildMemory(relationID, eventType, mctx)
	if memory == nil {
		return nil, nil
	}
	if err := s.memories.Create(ctx, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// ListAchievements returns the full catalog with per-relation unlock state
// for the UI layer.
func (s *Service) ListAchievements(ctx context.Context, relationID int64) ([]AchievementStatus, error) {
	unlocked, err := s.achievements.ListByRelation(ctx, relationID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Achievement, len(unlocked))
	for _, a := range unlocked {
		byID[a.AchievementID] = a
	}

	statuses := make([]AchievementStatus, 0, len(AchievementCatalog))
	for _, entry := range AchievementCatalog {
		status := AchievementStatus{Entry: entry}
		if a, ok := byID[entry.ID]; ok {
			status.Unlocked = true
			status.UnlockedAt = a.UnlockedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// ListMemories returns memories for a relation, optionally filtered by type
// or highlight flag.
func (s *Service) ListMemories(ctx context.Context, relationID int64, filter repositories.MemoryFilter) ([]*models.Memory, error) {
	return s.memories.List(ctx, relationID, filter)
}

// ListRecentEvents returns the newest event-log entries, paginated.
func (s *Service) ListRecentEvents(ctx context.Context, relationID int64, limit, offset int) ([]*models.EventLog, error) {
	return s.events.ListRecent(ctx, relationID, limit, offset)
}
