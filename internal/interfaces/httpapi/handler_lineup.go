package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/lineup-card/internal/domain/lineup"
	"github.com/riskibarqy/lineup-card/internal/usecase"
)

type lineupQueryRequest struct {
	Mode string `validate:"omitempty,oneof=starting all"`
}

type lineupCardDTO struct {
	Source      string           `json:"source"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Rows        []lineupEntryDTO `json:"rows"`
}

type lineupEntryDTO struct {
	ID                 int64   `json:"id"`
	FullName           string  `json:"fullName"`
	Abbreviation       string  `json:"abbreviation"`
	BattingOrder       *string `json:"battingOrder"`
	BattingPositionNum *string `json:"battingPositionNum"`
	Team               string  `json:"team"`
	TeamName           string  `json:"teamName"`
	TeamID             int64   `json:"teamId"`
}

func (h *Handler) GetGameLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameLineup")
	defer span.End()

	rawGamePk := strings.TrimSpace(r.PathValue("gamePk"))
	gamePk, err := strconv.ParseInt(rawGamePk, 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: game pk %q is not a valid integer", usecase.ErrInvalidInput, rawGamePk))
		return
	}

	req := lineupQueryRequest{Mode: strings.TrimSpace(r.URL.Query().Get("mode"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	mode, ok := lineup.ParseMode(req.Mode)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown lineup mode %q", usecase.ErrInvalidInput, req.Mode))
		return
	}

	card, err := h.lineupCards.Get(ctx, gamePk, mode)
	if err != nil {
		h.logger.WarnContext(ctx, "get game lineup failed", "game_pk", gamePk, "mode", mode, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardToDTO(card))
}

func cardToDTO(card lineup.Card) lineupCardDTO {
	rows := make([]lineupEntryDTO, 0, len(card.Rows))
	for _, item := range card.Rows {
		rows = append(rows, lineupEntryDTO{
			ID:                 item.PlayerID,
			FullName:           item.FullName,
			Abbreviation:       item.Abbreviation,
			BattingOrder:       item.BattingOrder,
			BattingPositionNum: item.SlotSequence,
			Team:               string(item.Side),
			TeamName:           item.TeamName,
			TeamID:             item.TeamID,
		})
	}

	return lineupCardDTO{
		Source:      card.Source,
		GeneratedAt: card.GeneratedAt,
		Rows:        rows,
	}
}
