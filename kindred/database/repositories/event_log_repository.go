package repositories

import (
	"context"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/uptrace/bun"
)

type EventLogRepository interface {
	Create(ctx context.Context, entry *models.EventLog) error
	CreateTx(ctx context.Context, tx bun.Tx, entry *models.EventLog) error
	ListRecent(ctx context.Context, relationID int64, limit, offset int) ([]*models.EventLog, error)
	// ListRecentDeltas returns the delta_score values of the newest entries,
	// newest first, for mood determination.
	ListRecentDeltas(ctx context.Context, relationID int64, limit int) ([]int, error)
	// CountPositiveByCategory counts entries of a category with a positive
	// delta, for achievement conditions (gifts, dates).
	CountPositiveByCategory(ctx context.Context, relationID int64, category string) (int, error)
	// CountSigned returns how many entries have positive and negative deltas.
	CountSigned(ctx context.Context, relationID int64) (positive int, negative int, err error)
}

type eventLogRepository struct {
	*BaseRepository
}

func NewEventLogRepository(db *bun.DB) EventLogRepository {
	return &eventLogRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *eventLogRepository) Create(ctx context.Context, entry *models.EventLog) error {
	entry.CreatedAt = time.Now()
	_, err := r.GetDB().NewInsert().Model(entry).Exec(ctx)
	return r.HandleError("create", "event_log", err)
}

func (r *eventLogRepository) CreateTx(ctx context.Context, tx bun.Tx, entry *models.EventLog) error {
	entry.CreatedAt = time.Now()
	_, err := tx.NewInsert().Model(entry).Exec(ctx)
	return r.HandleError("create_tx", "event_log", err)
}

func (r *eventLogRepository) ListRecent(ctx context.Context, relationID int64, limit, offset int) ([]*models.EventLog, error) {
	var entries []*models.EventLog
	err := r.GetDB().NewSelect().
		Model(&entries).
		Where("ev.relation_id = ?", relationID).
		Order("ev.created_at DESC", "ev.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)

	if err != nil {
		return nil, r.HandleError("list_recent", "event_log", err)
	}
	return entries, nil
}

func (r *eventLogRepository) ListRecentDeltas(ctx context.Context, relationID int64, limit int) ([]int, error) {
	var deltas []int
	err := r.GetDB().NewSelect().
		Model((*models.EventLog)(nil)).
		Column("delta_score").
		Where("relation_id = ?", relationID).
		Where("category != ?", models.EventCategoryMood).
		Order("created_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx, &deltas)

	if err != nil {
		return nil, r.HandleError("list_recent_deltas", "event_log", err)
	}
	return deltas, nil
}

func (r *eventLogRepository) CountPositiveByCategory(ctx context.Context, relationID int64, category string) (int, error) {
	count, err := r.GetDB().NewSelect().
		Model((*models.EventLog)(nil)).
		Where("relation_id = ?", relationID).
		Where("category = ?", category).
		Where("delta_score > 0").
		Count(ctx)

	if err != nil {
		return 0, r.HandleError("count_by_category", "event_log", err)
	}
	return count, nil
}

func (r *eventLogRepository) CountSigned(ctx context.Context, relationID int64) (int, int, error) {
	positive, err := r.GetDB().NewSelect().
		Model((*models.EventLog)(nil)).
		Where("relation_id = ?", relationID).
		Where("delta_score > 0").
		Count(ctx)
	if err != nil {
		return 0, 0, r.HandleError("count_signed", "event_log", err)
	}

	negative, err := r.GetDB().NewSelect().
		Model((*models.EventLog)(nil)).
		Where("relation_id = ?", relationID).
		Where("delta_score < 0").
		Count(ctx)
	if err != nil {
		return 0, 0, r.HandleError("count_signed", "event_log", err)
	}

	return positive, negative, nil
}
