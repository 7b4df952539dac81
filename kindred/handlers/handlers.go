package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kindredchat/kindred/kindred/config"
	"github.com/kindredchat/kindred/kindred/database"
	"github.com/kindredchat/kindred/kindred/database/models"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/favorability"
	"github.com/kindredchat/kindred/kindred/services"
)

// App bundles the dependencies the HTTP handlers need.
type App struct {
	DB           *database.DB
	Engine       *favorability.Service
	Messages     *services.MessageService
	MemorySearch *services.MemorySearchService
	Version      string
	Commit       string
}

// relationFromPath resolves the :userID/:characterID pair into a relation.
func (a *App) relationFromPath(c *fiber.Ctx) (*models.Relation, error) {
	return a.Engine.GetRelation(c.Context(), c.Params("userID"), c.Params("characterID"))
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = config.DefaultPageSize
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, favorability.ErrRelationNotFound):
		return fiber.NewError(fiber.StatusNotFound, "relation not found")
	case errors.Is(err, favorability.ErrUnknownAchievement):
		return fiber.NewError(fiber.StatusBadRequest, "unknown achievement id")
	default:
		return err
	}
}

// HealthCheck reports server and database status.
func HealthCheck(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "connected"
		if err := app.DB.GetPool().Ping(c.Context()); err != nil {
			dbStatus = "unreachable"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"version":  app.Version,
			"commit":   app.Commit,
			"database": dbStatus,
			"time":     time.Now().UTC(),
		})
	}
}

// RelationDetail returns the relation with resolved stage and mood info.
func RelationDetail(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}

		stage := favorability.StageByIndex(relation.Stage)
		mood := favorability.MoodCatalog[relation.Mood]
		return c.JSON(fiber.Map{
			"relation": relation,
			"stage": fiber.Map{
				"index":       relation.Stage,
				"label":       stage.Label,
				"description": stage.Description,
				"min_score":   stage.Min,
				"max_score":   stage.Max,
			},
			"mood": fiber.Map{
				"name":  relation.Mood,
				"label": mood.Label,
				"emoji": mood.Emoji,
			},
		})
	}
}

type specialEventRequest struct {
	EventType   string                 `json:"event_type"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// SpecialEvent applies a scored special event (gift, date, confession, ...)
// to the relation.
func SpecialEvent(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req specialEventRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if req.EventType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "event_type is required")
		}

		result, err := app.Engine.ProcessSpecialEvent(
			c.Context(), c.Params("userID"), c.Params("characterID"),
			req.EventType, req.Description, req.Metadata,
		)
		if err != nil {
			return mapEngineError(err)
		}

		sideEffects := make([]fiber.Map, 0, len(result.SideEffects))
		for _, se := range result.SideEffects {
			entry := fiber.Map{"name": se.Name, "ok": se.Err == nil}
			if se.Err != nil {
				entry["error"] = se.Err.Error()
			}
			sideEffects = append(sideEffects, entry)
		}

		return c.JSON(fiber.Map{
			"relation":         result.Relation,
			"event_type":       result.EventType,
			"delta_score":      result.DeltaScore,
			"new_achievements": result.NewAchievements,
			"side_effects":     sideEffects,
		})
	}
}

type messageRequest struct {
	Content string `json:"content"`
}

// Message records a chat message: it scores the content, applies the delta
// and returns the character's reply.
func Message(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req messageRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if req.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "content is required")
		}

		result, err := app.Messages.RecordMessage(
			c.Context(), c.Params("userID"), c.Params("characterID"), req.Content,
		)
		if err != nil {
			return mapEngineError(err)
		}

		return c.JSON(fiber.Map{
			"relation":         result.Relation,
			"reply":            result.Reply,
			"delta_score":      result.DeltaScore,
			"first_contact":    result.FirstContact,
			"new_achievements": result.NewAchievements,
		})
	}
}

type moodRequest struct {
	Mood   string `json:"mood"`
	Reason string `json:"reason"`
}

// SetMood overrides the relation's mood, logging the change when a reason
// is given.
func SetMood(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req moodRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if _, ok := favorability.MoodCatalog[req.Mood]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, "unknown mood")
		}

		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}
		if err := app.Engine.UpdateMood(c.Context(), relation.ID, req.Mood, req.Reason); err != nil {
			return mapEngineError(err)
		}
		return c.JSON(fiber.Map{"mood": req.Mood})
	}
}

// RefreshMood recomputes the mood from the recent event window.
func RefreshMood(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}
		mood, err := app.Engine.RefreshMood(c.Context(), relation.ID, c.Query("reason"))
		if err != nil {
			return mapEngineError(err)
		}
		return c.JSON(fiber.Map{"mood": mood})
	}
}

// Achievements returns the full catalog with per-relation unlock state.
func Achievements(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}
		statuses, err := app.Engine.ListAchievements(c.Context(), relation.ID)
		if err != nil {
			return mapEngineError(err)
		}

		out := make([]fiber.Map, 0, len(statuses))
		for _, st := range statuses {
			entry := fiber.Map{
				"id":          st.Entry.ID,
				"title":       st.Entry.Title,
				"description": st.Entry.Description,
				"icon":        st.Entry.Icon,
				"category":    st.Entry.Category,
				"unlocked":    st.Unlocked,
			}
			if st.Unlocked {
				entry["unlocked_at"] = st.UnlockedAt
			}
			out = append(out, entry)
		}
		return c.JSON(fiber.Map{"achievements": out})
	}
}

// Memories lists a relation's memories, optionally filtered by type or
// highlight flag, or fuzzy-searched with ?q=.
func Memories(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}

		if q := c.Query("q"); q != "" {
			memories, err := app.MemorySearch.Search(c.Context(), relation.ID, q)
			if err != nil {
				return mapEngineError(err)
			}
			return c.JSON(fiber.Map{"memories": memories})
		}

		limit, offset := parsePagination(c)
		memories, err := app.Engine.ListMemories(c.Context(), relation.ID, repositories.MemoryFilter{
			MemoryType:    c.Query("type"),
			HighlightOnly: c.QueryBool("highlights"),
			Limit:         limit,
			Offset:        offset,
		})
		if err != nil {
			return mapEngineError(err)
		}
		return c.JSON(fiber.Map{"memories": memories})
	}
}

// Events lists the newest event-log entries, paginated.
func Events(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}
		limit, offset := parsePagination(c)
		events, err := app.Engine.ListRecentEvents(c.Context(), relation.ID, limit, offset)
		if err != nil {
			return mapEngineError(err)
		}
		return c.JSON(fiber.Map{"events": events})
	}
}

// Stats returns the aggregated relation summary.
func Stats(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relation, err := app.relationFromPath(c)
		if err != nil {
			return mapEngineError(err)
		}
		summary, err := app.Engine.GetRelationStats(c.Context(), relation.ID)
		if err != nil {
			slog.Error("Failed to compute relation stats",
				slog.String("type", "api"),
				slog.Int64("relation_id", relation.ID),
				slog.Any("error", err))
			return mapEngineError(err)
		}
		return c.JSON(summary)
	}
}
