package lineup

import (
	"strings"
	"time"
)

// Side identifies which dugout a record belongs to. Away sorts before home,
// matching batting-order-card conventions.
type Side string

const (
	SideAway Side = "away"
	SideHome Side = "home"
)

// Mode selects how much of the batting order a card includes.
type Mode string

const (
	// ModeStarting keeps only the players who started the game in their slot.
	ModeStarting Mode = "starting"
	// ModeAll keeps every player who appeared in the batting order,
	// including in-game substitutions.
	ModeAll Mode = "all"
)

// ParseMode normalizes a raw mode value. An empty value defaults to
// ModeStarting; anything else unrecognized reports ok=false.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return ModeStarting, true
	case ModeStarting:
		return ModeStarting, true
	case ModeAll:
		return ModeAll, true
	default:
		return "", false
	}
}

// Entry is one row of a lineup card.
//
// BattingOrder is the lineup slot as a single-digit string ("1" = leadoff).
// SlotSequence orders appearances within the same slot: "0" is the starter,
// higher values are later substitutions (pinch hitters, defensive swaps).
// The two fields are jointly nil or jointly non-nil; both derive from the
// feed's packed battingOrder value.
type Entry struct {
	PlayerID     int64
	FullName     string
	Abbreviation string
	BattingOrder *string
	SlotSequence *string
	Side         Side
	TeamName     string
	TeamID       int64
}

// InOrder reports whether the player holds a batting-order slot at all.
func (e Entry) InOrder() bool {
	return e.BattingOrder != nil && e.SlotSequence != nil
}

// Starter reports whether the player started the game in their slot.
func (e Entry) Starter() bool {
	return e.SlotSequence != nil && *e.SlotSequence == "0"
}

// Card is the assembled batting-order table for one game. It carries no
// identity beyond a single call; callers get a fresh card per request.
type Card struct {
	Source      string
	GeneratedAt time.Time
	Rows        []Entry
}
