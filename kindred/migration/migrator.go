package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/favorability"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultBatchSize = 1000

// Migrator imports relationship data from the legacy MongoDB deployment
// into Postgres. Relations are imported first so child documents can be
// remapped from legacy ObjectIDs to the new integer keys.
type Migrator struct {
	pgDB    *bun.DB
	mongoDB *mongo.Database
	cfg     *favorability.Config

	batchSize    int
	sleepBetween time.Duration
	stats        MigrationStats

	// legacy relation ObjectID hex -> new relations.id
	relationIDs map[string]int64
}

func NewMigrator(pgDB *bun.DB, mongoDB *mongo.Database, cfg *favorability.Config) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   mongoDB,
		cfg:       cfg,
		batchSize: defaultBatchSize,
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
		relationIDs: make(map[string]int64),
	}
}

// SetBatchSize overrides the default batch size for inserts.
func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// SetSleepBetween sets an optional pause between batch inserts, useful when
// importing through a connection pooler.
func (m *Migrator) SetSleepBetween(d time.Duration) {
	m.sleepBetween = d
}

// Stats returns the per-table counters collected so far.
func (m *Migrator) Stats() *MigrationStats {
	return &m.stats
}

// MigrateAll runs the full import in dependency order.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	if err := m.MigrateRelations(ctx); err != nil {
		return fmt.Errorf("relations migration failed: %w", err)
	}
	if err := m.MigrateMemories(ctx); err != nil {
		return fmt.Errorf("memories migration failed: %w", err)
	}
	if err := m.MigrateEventLogs(ctx); err != nil {
		return fmt.Errorf("event logs migration failed: %w", err)
	}
	if err := m.MigrateAchievements(ctx); err != nil {
		return fmt.Errorf("achievements migration failed: %w", err)
	}

	m.logSummary()
	return nil
}

// MigrateRelations imports the relations collection. Inserts are idempotent
// on (user_id, character_id) so re-runs pick up where they left off.
func (m *Migrator) MigrateRelations(ctx context.Context) error {
	stats := m.stats.table("relations")

	cur, err := m.mongoDB.Collection("relations").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query relations: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mr MongoRelation
		if err := cur.Decode(&mr); err != nil {
			stats.Failed++
			slog.Warn("Skipping undecodable relation document",
				slog.String("type", "db"),
				slog.Any("error", err))
			continue
		}
		stats.Read++

		if mr.UserID == "" || mr.CharacterID == "" {
			stats.Skipped++
			continue
		}

		relation := m.convertRelation(mr)
		res, err := m.pgDB.NewInsert().
			Model(relation).
			On("CONFLICT (user_id, character_id) DO NOTHING").
			Returning("id").
			Exec(ctx)
		if err != nil {
			stats.Failed++
			slog.Warn("Failed to insert relation",
				slog.String("type", "db"),
				slog.String("user_id", relation.UserID),
				slog.String("character_id", relation.CharacterID),
				slog.Any("error", err))
			continue
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			// Already imported; look up the existing key for remapping.
			err := m.pgDB.NewSelect().
				Model(relation).
				Column("id").
				Where("user_id = ? AND character_id = ?", relation.UserID, relation.CharacterID).
				Scan(ctx)
			if err != nil {
				stats.Failed++
				continue
			}
			stats.Skipped++
		} else {
			stats.Inserted++
		}
		m.relationIDs[mr.ID.Hex()] = relation.ID
	}
	if err := cur.Err(); err != nil {
		return err
	}

	slog.Info("Relations imported",
		slog.String("type", "db"),
		slog.Int64("read", stats.Read),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("failed", stats.Failed))
	return nil
}

// MigrateMemories imports the memories collection in batches.
func (m *Migrator) MigrateMemories(ctx context.Context) error {
	stats := m.stats.table("memories")

	cur, err := m.mongoDB.Collection("memories").Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("Memories collection not found, skipping", slog.String("type", "db"))
		return nil
	}
	defer cur.Close(ctx)

	var batch []*models.Memory
	for cur.Next(ctx) {
		var mm MongoMemory
		if err := cur.Decode(&mm); err != nil {
			stats.Failed++
			continue
		}
		stats.Read++

		relationID, ok := m.relationIDs[mm.RelationID.Hex()]
		if !ok {
			stats.Skipped++
			continue
		}
		batch = append(batch, convertMemory(mm, relationID))

		if len(batch) >= m.batchSize {
			if err := flushBatch(ctx, m, &batch, stats); err != nil {
				return err
			}
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if err := flushBatch(ctx, m, &batch, stats); err != nil {
		return err
	}

	slog.Info("Memories imported",
		slog.String("type", "db"),
		slog.Int64("read", stats.Read),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("skipped", stats.Skipped))
	return nil
}

// MigrateEventLogs imports the eventlogs collection in batches, tagging each
// row with the category column the legacy schema lacked.
func (m *Migrator) MigrateEventLogs(ctx context.Context) error {
	stats := m.stats.table("event_logs")

	cur, err := m.mongoDB.Collection("eventlogs").Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("Event logs collection not found, skipping", slog.String("type", "db"))
		return nil
	}
	defer cur.Close(ctx)

	var batch []*models.EventLog
	for cur.Next(ctx) {
		var me MongoEventLog
		if err := cur.Decode(&me); err != nil {
			stats.Failed++
			continue
		}
		stats.Read++

		relationID, ok := m.relationIDs[me.RelationID.Hex()]
		if !ok {
			stats.Skipped++
			continue
		}
		batch = append(batch, convertEventLog(me, relationID))

		if len(batch) >= m.batchSize {
			if err := flushBatch(ctx, m, &batch, stats); err != nil {
				return err
			}
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if err := flushBatch(ctx, m, &batch, stats); err != nil {
		return err
	}

	slog.Info("Event logs imported",
		slog.String("type", "db"),
		slog.Int64("read", stats.Read),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("skipped", stats.Skipped))
	return nil
}

// MigrateAchievements imports unlocked achievements. Entries no longer in
// the catalog are dropped.
func (m *Migrator) MigrateAchievements(ctx context.Context) error {
	stats := m.stats.table("achievements")

	cur, err := m.mongoDB.Collection("achievements").Find(ctx, bson.D{})
	if err != nil {
		slog.Warn("Achievements collection not found, skipping", slog.String("type", "db"))
		return nil
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var ma MongoAchievement
		if err := cur.Decode(&ma); err != nil {
			stats.Failed++
			continue
		}
		stats.Read++

		relationID, ok := m.relationIDs[ma.RelationID.Hex()]
		if !ok {
			stats.Skipped++
			continue
		}
		achievement := convertAchievement(ma, relationID)
		if achievement == nil {
			stats.Skipped++
			continue
		}

		_, err := m.pgDB.NewInsert().
			Model(achievement).
			On("CONFLICT (relation_id, achievement_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			stats.Failed++
			continue
		}
		stats.Inserted++
	}
	if err := cur.Err(); err != nil {
		return err
	}

	slog.Info("Achievements imported",
		slog.String("type", "db"),
		slog.Int64("read", stats.Read),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("skipped", stats.Skipped))
	return nil
}

// flushBatch inserts the accumulated batch and resets the slice.
func flushBatch[T any](ctx context.Context, m *Migrator, batch *[]*T, stats *TableStats) error {
	if len(*batch) == 0 {
		return nil
	}
	n := int64(len(*batch))

	res, err := m.pgDB.NewInsert().Model(batch).Exec(ctx)
	*batch = (*batch)[:0]
	if err != nil {
		stats.Failed += n
		return fmt.Errorf("batch insert failed: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil {
		stats.Inserted += affected
	} else {
		stats.Inserted += n
	}
	if m.sleepBetween > 0 {
		time.Sleep(m.sleepBetween)
	}
	return nil
}

func (m *Migrator) logSummary() {
	elapsed := time.Since(m.stats.StartTime)
	for name, t := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("type", "db"),
			slog.String("table", name),
			slog.Int64("read", t.Read),
			slog.Int64("inserted", t.Inserted),
			slog.Int64("skipped", t.Skipped),
			slog.Int64("failed", t.Failed))
	}
	slog.Info("Migration complete",
		slog.String("type", "db"),
		slog.Duration("took", elapsed))
}
