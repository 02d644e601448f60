package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/lineup-card/internal/domain/lineup"
	"github.com/riskibarqy/lineup-card/internal/platform/logging"
)

// cardSource labels every assembled card with its provenance.
const cardSource = "MLB Stats API live game feed"

// battingOrderRegex matches the packed batting-order value: slot digit
// followed by the within-slot sequence. A present value shorter than two
// characters is rejected as malformed rather than silently nulled; the
// feed never emits one for a player who actually batted.
var battingOrderRegex = regexp.MustCompile(`^[0-9]{2,}$`)

// LineupCardService assembles batting-order cards from live game feeds.
type LineupCardService struct {
	feed   LiveFeedFetcher
	logger *logging.Logger
	now    func() time.Time
}

func NewLineupCardService(feed LiveFeedFetcher, logger *logging.Logger) *LineupCardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LineupCardService{
		feed:   feed,
		logger: logger,
		now:    time.Now,
	}
}

// Get fetches the live feed for gamePk and reshapes it into a lineup card.
// The pipeline is all-or-nothing: any feed-shape problem fails the whole
// call, never a partial table.
func (s *LineupCardService) Get(ctx context.Context, gamePk int64, mode lineup.Mode) (lineup.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupCardService.Get")
	defer span.End()

	if gamePk <= 0 {
		return lineup.Card{}, fmt.Errorf("%w: game pk must be greater than zero", ErrInvalidInput)
	}
	if mode != lineup.ModeStarting && mode != lineup.ModeAll {
		return lineup.Card{}, fmt.Errorf("%w: unknown lineup mode %q", ErrInvalidInput, mode)
	}

	feed, err := s.feed.FetchLiveFeed(ctx, gamePk)
	if err != nil {
		return lineup.Card{}, fmt.Errorf("fetch live feed game_pk=%d: %w", gamePk, err)
	}

	rows, err := assembleLineupRows(feed, mode)
	if err != nil {
		return lineup.Card{}, fmt.Errorf("assemble lineup game_pk=%d: %w", gamePk, err)
	}

	s.logger.DebugContext(ctx, "lineup card assembled", "game_pk", gamePk, "mode", mode, "rows", len(rows))

	return lineup.Card{
		Source:      cardSource,
		GeneratedAt: s.now().UTC(),
		Rows:        rows,
	}, nil
}

func assembleLineupRows(feed LiveGameFeed, mode lineup.Mode) ([]lineup.Entry, error) {
	if err := validateTeamMeta(lineup.SideAway, feed.AwayTeam, feed.AwayPlayers); err != nil {
		return nil, err
	}
	if err := validateTeamMeta(lineup.SideHome, feed.HomeTeam, feed.HomePlayers); err != nil {
		return nil, err
	}

	rows := make([]lineup.Entry, 0, len(feed.AwayPlayers)+len(feed.HomePlayers))

	// Away first, home second; the final sort keeps that grouping because
	// "away" < "home" lexicographically.
	sides := []struct {
		side    lineup.Side
		team    FeedTeamMeta
		players map[string]FeedPlayer
	}{
		{lineup.SideAway, feed.AwayTeam, feed.AwayPlayers},
		{lineup.SideHome, feed.HomeTeam, feed.HomePlayers},
	}

	for _, group := range sides {
		keys := make([]string, 0, len(group.players))
		for key := range group.players {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			entry, err := extractLineupEntry(group.side, group.team, key, group.players[key])
			if err != nil {
				return nil, err
			}
			if !entry.InOrder() {
				continue
			}
			if mode == lineup.ModeStarting && !entry.Starter() {
				continue
			}
			rows = append(rows, entry)
		}
	}

	// Both order fields compare as strings on purpose: behavioral parity
	// with the feed's packed representation. A two-digit slot ("10") would
	// sort before "2", but real lineups stop at 9.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Side != rows[j].Side {
			return rows[i].Side < rows[j].Side
		}
		if *rows[i].BattingOrder != *rows[j].BattingOrder {
			return *rows[i].BattingOrder < *rows[j].BattingOrder
		}
		return *rows[i].SlotSequence < *rows[j].SlotSequence
	})

	return rows, nil
}

// extractLineupEntry normalizes one boxscore player sub-document into a
// card row. A missing battingOrder is legitimate (pitchers in DH games,
// bench players who never hit) and yields a row with both order fields nil.
func extractLineupEntry(side lineup.Side, team FeedTeamMeta, playerKey string, p FeedPlayer) (lineup.Entry, error) {
	if p.PersonID <= 0 {
		return lineup.Entry{}, fmt.Errorf("%w: missing %s", ErrMalformedFeed, playerPath(side, playerKey, "person.id"))
	}
	fullName := strings.TrimSpace(p.FullName)
	if fullName == "" {
		return lineup.Entry{}, fmt.Errorf("%w: missing %s", ErrMalformedFeed, playerPath(side, playerKey, "person.fullName"))
	}

	entry := lineup.Entry{
		PlayerID:     p.PersonID,
		FullName:     fullName,
		Abbreviation: strings.TrimSpace(p.Position.Abbreviation),
		Side:         side,
		TeamName:     team.Name,
		TeamID:       team.ExternalID,
	}

	if p.BattingOrder == nil {
		return entry, nil
	}

	slot, seq, err := splitBattingOrder(*p.BattingOrder)
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("%w: %s: %v", ErrMalformedFeed, playerPath(side, playerKey, "battingOrder"), err)
	}
	entry.BattingOrder = &slot
	entry.SlotSequence = &seq

	return entry, nil
}

// splitBattingOrder unpacks the feed's fixed-width batting-order value.
// The first digit is the lineup slot; the remainder orders appearances
// within that slot. The integer round-trip strips leading zeros, so
// "100" -> ("1", "0") and "213" -> ("2", "13").
func splitBattingOrder(raw string) (string, string, error) {
	value := strings.TrimSpace(raw)
	if !battingOrderRegex.MatchString(value) {
		return "", "", fmt.Errorf("batting order value %q is not a numeric string of at least 2 digits", raw)
	}

	seq, err := strconv.Atoi(value[1:])
	if err != nil {
		return "", "", fmt.Errorf("parse slot sequence from %q: %v", raw, err)
	}

	return value[:1], strconv.Itoa(seq), nil
}

func validateTeamMeta(side lineup.Side, team FeedTeamMeta, players map[string]FeedPlayer) error {
	if strings.TrimSpace(team.Name) == "" {
		return fmt.Errorf("%w: missing gameData.teams.%s.name", ErrMalformedFeed, side)
	}
	if team.ExternalID <= 0 {
		return fmt.Errorf("%w: missing gameData.teams.%s.id", ErrMalformedFeed, side)
	}
	if len(players) == 0 {
		return fmt.Errorf("%w: liveData.boxscore.teams.%s.players is empty", ErrMalformedFeed, side)
	}

	return nil
}

func playerPath(side lineup.Side, playerKey, field string) string {
	return fmt.Sprintf("liveData.boxscore.teams.%s.players.%s.%s", side, playerKey, field)
}
