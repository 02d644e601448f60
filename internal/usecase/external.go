package usecase

import "context"

// LiveGameFeed is the provider-agnostic view of one live-game feed,
// reduced to the parts the lineup assembler reads. Player maps are keyed
// by the provider's player-id key (e.g. "ID660271"); map keys double as
// the distinct-player set.
type LiveGameFeed struct {
	AwayTeam    FeedTeamMeta
	HomeTeam    FeedTeamMeta
	AwayPlayers map[string]FeedPlayer
	HomePlayers map[string]FeedPlayer
}

// FeedTeamMeta is the team identity block under gameData.teams.
type FeedTeamMeta struct {
	ExternalID int64
	Name       string
}

// FeedPlayer is one player sub-document from the boxscore. BattingOrder is
// nil when the player never entered the batting order.
type FeedPlayer struct {
	PersonID     int64
	FullName     string
	Position     FeedPosition
	BattingOrder *string
}

// FeedPosition carries the position block verbatim. Only Abbreviation is
// published on card rows; the rest is dropped during assembly.
type FeedPosition struct {
	Code         string
	Name         string
	Type         string
	Abbreviation string
	Link         string
}

// LiveFeedFetcher is the port the assembler pulls live feeds through.
type LiveFeedFetcher interface {
	FetchLiveFeed(ctx context.Context, gamePk int64) (LiveGameFeed, error)
}
