// Command lineupcard fetches the batting-order card for one game and
// prints it as JSON. It is the CLI face of the same operation the API
// serves: one game pk in, one lineup card out.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/lineup-card/external/statsapi"
	"github.com/riskibarqy/lineup-card/internal/domain/lineup"
	"github.com/riskibarqy/lineup-card/internal/platform/logging"
	"github.com/riskibarqy/lineup-card/internal/usecase"
)

func main() {
	gamePk := flag.Int64("game", 0, "game pk of the live game feed (required)")
	rawMode := flag.String("mode", "starting", "lineup mode: starting or all")
	baseURL := flag.String("base-url", "", "override the stats API base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "feed request timeout")
	flag.Parse()

	if err := run(*gamePk, *rawMode, *baseURL, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "lineupcard:", err)
		os.Exit(1)
	}
}

func run(gamePk int64, rawMode, baseURL string, timeout time.Duration) error {
	if gamePk <= 0 {
		return fmt.Errorf("-game is required and must be greater than zero")
	}
	mode, ok := lineup.ParseMode(rawMode)
	if !ok {
		return fmt.Errorf("unknown mode %q: valid values are %s, %s", rawMode, lineup.ModeStarting, lineup.ModeAll)
	}

	logger := logging.NewJSON(logging.LevelWarn)
	defer func() { _ = logger.Sync() }()

	client := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL: baseURL,
		Timeout: timeout,
		Logger:  logger,
	})
	service := usecase.NewLineupCardService(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
	defer cancel()

	card, err := service.Get(ctx, gamePk, mode)
	if err != nil {
		return err
	}

	out, err := sonic.MarshalIndent(cardOutput(card), "", "  ")
	if err != nil {
		return fmt.Errorf("encode lineup card: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

type cardJSON struct {
	Source      string      `json:"source"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Rows        []entryJSON `json:"rows"`
}

type entryJSON struct {
	ID                 int64   `json:"id"`
	FullName           string  `json:"fullName"`
	Abbreviation       string  `json:"abbreviation"`
	BattingOrder       *string `json:"battingOrder"`
	BattingPositionNum *string `json:"battingPositionNum"`
	Team               string  `json:"team"`
	TeamName           string  `json:"teamName"`
	TeamID             int64   `json:"teamId"`
}

func cardOutput(card lineup.Card) cardJSON {
	rows := make([]entryJSON, 0, len(card.Rows))
	for _, item := range card.Rows {
		rows = append(rows, entryJSON{
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

	return cardJSON{
		Source:      card.Source,
		GeneratedAt: card.GeneratedAt,
		Rows:        rows,
	}
}
