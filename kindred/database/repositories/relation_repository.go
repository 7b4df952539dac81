package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/kindredchat/kindred/kindred/config"
	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/uptrace/bun"
)

type RelationRepository interface {
	Create(ctx context.Context, relation *models.Relation) error
	GetByID(ctx context.Context, id int64) (*models.Relation, error)
	GetByUserAndCharacter(ctx context.Context, userID, characterID string) (*models.Relation, error)
	// GetOrCreate returns the relation for the pair, creating it lazily on
	// first contact. The bool reports whether a new row was created.
	GetOrCreate(ctx context.Context, userID, characterID string) (*models.Relation, bool, error)
	Update(ctx context.Context, relation *models.Relation) error
	Delete(ctx context.Context, id int64) error
	// Transaction and the Tx methods serialize concurrent score updates for
	// the same relation behind a row-level lock.
	Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error
	GetForUpdateTx(ctx context.Context, tx bun.Tx, id int64) (*models.Relation, error)
	UpdateTx(ctx context.Context, tx bun.Tx, relation *models.Relation) error
}

type relationRepository struct {
	*BaseRepository
	cache *lru.Cache
}

type relationCacheEntry struct {
	relation  *models.Relation
	expiresAt time.Time
}

func NewRelationRepository(db *bun.DB) RelationRepository {
	cache, _ := lru.New(config.RelationCacheSize)
	return &relationRepository{
		BaseRepository: NewBaseRepository(db),
		cache:          cache,
	}
}

func cacheKey(userID, characterID string) string {
	return userID + ":" + characterID
}

func (r *relationRepository) Create(ctx context.Context, relation *models.Relation) error {
	now := time.Now()
	relation.CreatedAt = now
	relation.UpdatedAt = now
	if relation.Mood == "" {
		relation.Mood = "neutral"
	}

	_, err := r.GetDB().NewInsert().Model(relation).Exec(ctx)
	return r.HandleError("create", "relation", err)
}

func (r *relationRepository) GetByID(ctx context.Context, id int64) (*models.Relation, error) {
	relation := new(models.Relation)
	err := r.GetDB().NewSelect().
		Model(relation).
		Where("rel.id = ?", id).
		Scan(ctx)

	if err != nil {
		return nil, r.HandleErrorWithID("get", "relation", id, err)
	}
	return relation, nil
}

func (r *relationRepository) GetByUserAndCharacter(ctx context.Context, userID, characterID string) (*models.Relation, error) {
	key := cacheKey(userID, characterID)
	if cached, ok := r.cache.Get(key); ok {
		entry := cached.(relationCacheEntry)
		if time.Now().Before(entry.expiresAt) {
			return entry.relation, nil
		}
		r.cache.Remove(key)
	}

	relation := new(models.Relation)
	err := r.GetDB().NewSelect().
		Model(relation).
		Where("rel.user_id = ? AND rel.character_id = ?", userID, characterID).
		Scan(ctx)

	if err != nil {
		return nil, r.HandleErrorWithID("get", "relation", key, err)
	}

	r.cache.Add(key, relationCacheEntry{
		relation:  relation,
		expiresAt: time.Now().Add(config.CacheExpiration),
	})
	return relation, nil
}

func (r *relationRepository) GetOrCreate(ctx context.Context, userID, characterID string) (*models.Relation, bool, error) {
	relation, err := r.GetByUserAndCharacter(ctx, userID, characterID)
	if err == nil {
		return relation, false, nil
	}
	if !IsNotFound(err) {
		return nil, false, err
	}

	relation = &models.Relation{
		UserID:      userID,
		CharacterID: characterID,
		Mood:        "neutral",
	}
	if err := r.Create(ctx, relation); err != nil {
		// Lost a creation race: another request inserted the pair first.
		if existing, getErr := r.GetByUserAndCharacter(ctx, userID, characterID); getErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return relation, true, nil
}

func (r *relationRepository) Update(ctx context.Context, relation *models.Relation) error {
	relation.UpdatedAt = time.Now()
	_, err := r.GetDB().NewUpdate().
		Model(relation).
		WherePK().
		Exec(ctx)

	r.cache.Remove(cacheKey(relation.UserID, relation.CharacterID))
	return r.HandleErrorWithID("update", "relation", relation.ID, err)
}

func (r *relationRepository) Delete(ctx context.Context, id int64) error {
	relation, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.GetDB().NewDelete().
		Model((*models.Relation)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	r.cache.Remove(cacheKey(relation.UserID, relation.CharacterID))
	return r.HandleErrorWithID("delete", "relation", id, err)
}

func (r *relationRepository) GetForUpdateTx(ctx context.Context, tx bun.Tx, id int64) (*models.Relation, error) {
	relation := new(models.Relation)
	err := tx.NewSelect().
		Model(relation).
		Where("rel.id = ?", id).
		For("UPDATE").
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "relation", ID: id}
		}
		return nil, r.HandleErrorWithID("get_for_update", "relation", id, err)
	}
	return relation, nil
}

func (r *relationRepository) UpdateTx(ctx context.Context, tx bun.Tx, relation *models.Relation) error {
	relation.UpdatedAt = time.Now()
	_, err := tx.NewUpdate().
		Model(relation).
		WherePK().
		Exec(ctx)

	r.cache.Remove(cacheKey(relation.UserID, relation.CharacterID))
	return r.HandleErrorWithID("update_tx", "relation", relation.ID, err)
}
