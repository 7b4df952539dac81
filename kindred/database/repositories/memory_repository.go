package repositories

import (
	"context"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/uptrace/bun"
)

// MemoryFilter narrows memory listings. Zero values mean no filtering.
type MemoryFilter struct {
	MemoryType    string
	HighlightOnly bool
	Limit         int
	Offset        int
}

type MemoryRepository interface {
	Create(ctx context.Context, memory *models.Memory) error
	GetByID(ctx context.Context, id int64) (*models.Memory, error)
	List(ctx context.Context, relationID int64, filter MemoryFilter) ([]*models.Memory, error)
	CountHighlights(ctx context.Context, relationID int64) (int, error)
}

type memoryRepository struct {
	*BaseRepository
}

func NewMemoryRepository(db *bun.DB) MemoryRepository {
	return &memoryRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *memoryRepository) Create(ctx context.Context, memory *models.Memory) error {
	memory.CreatedAt = time.Now()
	if memory.Importance < 1 {
		memory.Importance = 1
	}
	if memory.Importance > 5 {
		memory.Importance = 5
	}
	_, err := r.GetDB().NewInsert().Model(memory).Exec(ctx)
	return r.HandleError("create", "memory", err)
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*models.Memory, error) {
	memory := new(models.Memory)
	err := r.GetDB().NewSelect().
		Model(memory).
		Where("mem.id = ?", id).
		Scan(ctx)

	if err != nil {
		return nil, r.HandleErrorWithID("get", "memory", id, err)
	}
	return memory, nil
}

func (r *memoryRepository) List(ctx context.Context, relationID int64, filter MemoryFilter) ([]*models.Memory, error) {
	var memories []*models.Memory
	query := r.GetDB().NewSelect().
		Model(&memories).
		Where("mem.relation_id = ?", relationID).
		Order("mem.created_at DESC", "mem.id DESC")

	if filter.MemoryType != "" {
		query = query.Where("mem.memory_type = ?", filter.MemoryType)
	}
	if filter.HighlightOnly {
		query = query.Where("mem.is_highlight = true")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, r.HandleError("list", "memory", err)
	}
	return memories, nil
}

func (r *memoryRepository) CountHighlights(ctx context.Context, relationID int64) (int, error) {
	count, err := r.GetDB().NewSelect().
		Model((*models.Memory)(nil)).
		Where("relation_id = ?", relationID).
		Where("is_highlight = true").
		Count(ctx)

	if err != nil {
		return 0, r.HandleError("count_highlights", "memory", err)
	}
	return count, nil
}
