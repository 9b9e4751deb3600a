package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/scoreboard/internal/domain/game"
	"github.com/riskibarqy/scoreboard/internal/usecase"
	"github.com/riskibarqy/scoreboard/internal/validation"
)

type gameSideDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type gameDTO struct {
	ID   int64       `json:"id"`
	Date time.Time   `json:"date"`
	Home gameSideDTO `json:"home"`
	Away gameSideDTO `json:"away"`
}

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		ID:   item.ID,
		Date: item.Date.UTC(),
		Home: gameSideDTO{ID: item.HomeID, Name: item.HomeName, Score: item.HomeScore},
		Away: gameSideDTO{ID: item.AwayID, Name: item.AwayName, Score: item.AwayScore},
	}
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	items, err := h.gameService.List(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(items))
	for _, item := range items {
		out = append(out, gameToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	id, err := idParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Get(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var payload validation.GamePayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Create(ctx, payload)
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	id, err := idParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload validation.GamePayload
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Update(ctx, id, payload)
	if err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	id, err := idParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeNoContent(w)
}
