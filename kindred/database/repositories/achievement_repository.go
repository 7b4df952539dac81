package repositories

import (
	"context"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/uptrace/bun"
)

type AchievementRepository interface {
	// Insert persists an unlocked achievement. Concurrent unlocks for the
	// same (relation, achievement) pair race on the unique constraint; the
	// loser gets the already-persisted row back. The bool reports whether
	// this call created the row.
	Insert(ctx context.Context, achievement *models.Achievement) (*models.Achievement, bool, error)
	GetByRelationAndID(ctx context.Context, relationID int64, achievementID string) (*models.Achievement, error)
	ListByRelation(ctx context.Context, relationID int64) ([]*models.Achievement, error)
}

type achievementRepository struct {
	*BaseRepository
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *achievementRepository) Insert(ctx context.Context, achievement *models.Achievement) (*models.Achievement, bool, error) {
	achievement.UnlockedAt = time.Now()

	res, err := r.GetDB().NewInsert().
		Model(achievement).
		On("CONFLICT (relation_id, achievement_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, false, r.HandleError("insert", "achievement", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		existing, err := r.GetByRelationAndID(ctx, achievement.RelationID, achievement.AchievementID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	return achievement, true, nil
}

func (r *achievementRepository) GetByRelationAndID(ctx context.Context, relationID int64, achievementID string) (*models.Achievement, error) {
	achievement := new(models.Achievement)
	err := r.GetDB().NewSelect().
		Model(achievement).
		Where("ach.relation_id = ? AND ach.achievement_id = ?", relationID, achievementID).
		Scan(ctx)

	if err != nil {
		return nil, r.HandleErrorWithID("get", "achievement", achievementID, err)
	}
	return achievement, nil
}

func (r *achievementRepository) ListByRelation(ctx context.Context, relationID int64) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := r.GetDB().NewSelect().
		Model(&achievements).
		Where("ach.relation_id = ?", relationID).
		Order("ach.unlocked_at ASC", "ach.id ASC").
		Scan(ctx)

	if err != nil {
		return nil, r.HandleError("list", "achievement", err)
	}
	return achievements, nil
}
