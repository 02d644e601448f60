package statsapi

import "github.com/riskibarqy/lineup-card/internal/usecase"

// liveFeedEnvelope mirrors the slice of the /game/{gamePk}/feed/live
// document the lineup assembler reads. Everything else in the feed is
// ignored at decode time.
type liveFeedEnvelope struct {
	GameData struct {
		Teams struct {
			Away feedTeam `json:"away"`
			Home feedTeam `json:"home"`
		} `json:"teams"`
	} `json:"gameData"`
	LiveData struct {
		Boxscore struct {
			Teams struct {
				Away feedBoxscoreTeam `json:"away"`
				Home feedBoxscoreTeam `json:"home"`
			} `json:"teams"`
		} `json:"boxscore"`
	} `json:"liveData"`
}

type feedTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type feedBoxscoreTeam struct {
	Players map[string]feedBoxscorePlayer `json:"players"`
}

type feedBoxscorePlayer struct {
	Person struct {
		ID       int64  `json:"id"`
		FullName string `json:"fullName"`
	} `json:"person"`
	Position struct {
		Code         string `json:"code"`
		Name         string `json:"name"`
		Type         string `json:"type"`
		Abbreviation string `json:"abbreviation"`
		Link         string `json:"link"`
	} `json:"position"`
	// battingOrder is a packed numeric string like "100"; absent for
	// players who never entered the batting order.
	BattingOrder *string `json:"battingOrder"`
}

func (e liveFeedEnvelope) toExternal() usecase.LiveGameFeed {
	return usecase.LiveGameFeed{
		AwayTeam: usecase.FeedTeamMeta{
			ExternalID: e.GameData.Teams.Away.ID,
			Name:       e.GameData.Teams.Away.Name,
		},
		HomeTeam: usecase.FeedTeamMeta{
			ExternalID: e.GameData.Teams.Home.ID,
			Name:       e.GameData.Teams.Home.Name,
		},
		AwayPlayers: mapFeedPlayers(e.LiveData.Boxscore.Teams.Away.Players),
		HomePlayers: mapFeedPlayers(e.LiveData.Boxscore.Teams.Home.Players),
	}
}

func mapFeedPlayers(players map[string]feedBoxscorePlayer) map[string]usecase.FeedPlayer {
	out := make(map[string]usecase.FeedPlayer, len(players))
	for key, item := range players {
		out[key] = usecase.FeedPlayer{
			PersonID: item.Person.ID,
			FullName: item.Person.FullName,
			Position: usecase.FeedPosition{
				Code:         item.Position.Code,
				Name:         item.Position.Name,
				Type:         item.Position.Type,
				Abbreviation: item.Position.Abbreviation,
				Link:         item.Position.Link,
			},
			BattingOrder: item.BattingOrder,
		}
	}
	return out
}
