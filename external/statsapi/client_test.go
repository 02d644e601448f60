package statsapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/lineup-card/internal/platform/logging"
	"github.com/riskibarqy/lineup-card/internal/usecase"
)

const liveFeedFixture = `{
  "gameData": {
    "teams": {
      "away": {"id": 134, "name": "Pittsburgh Pirates", "link": "/api/v1/teams/134"},
      "home": {"id": 121, "name": "New York Mets", "link": "/api/v1/teams/121"}
    }
  },
  "liveData": {
    "boxscore": {
      "teams": {
        "away": {
          "players": {
            "ID607231": {
              "person": {"id": 607231, "fullName": "Oneil Cruz"},
              "position": {"code": "6", "name": "Shortstop", "type": "Infielder", "abbreviation": "SS", "link": "/api/v1/positions/SS"},
              "battingOrder": "100"
            },
            "ID112233": {
              "person": {"id": 112233, "fullName": "David Bednar"},
              "position": {"code": "1", "name": "Pitcher", "type": "Pitcher", "abbreviation": "P", "link": "/api/v1/positions/P"}
            }
          }
        },
        "home": {
          "players": {
            "ID500001": {
              "person": {"id": 500001, "fullName": "Francisco Lindor"},
              "position": {"code": "6", "name": "Shortstop", "type": "Infielder", "abbreviation": "SS", "link": "/api/v1/positions/SS"},
              "battingOrder": "213"
            }
          }
        }
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})
}

func TestClient_FetchLiveFeed_DecodesFeed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game/716463/feed/live" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		if got := r.Header.Get("accept"); got != "application/json" {
			t.Errorf("unexpected accept header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(liveFeedFixture))
	})

	feed, err := client.FetchLiveFeed(t.Context(), 716463)
	if err != nil {
		t.Fatalf("fetch live feed: %v", err)
	}

	if feed.AwayTeam.ExternalID != 134 || feed.AwayTeam.Name != "Pittsburgh Pirates" {
		t.Fatalf("unexpected away team meta: %+v", feed.AwayTeam)
	}
	if feed.HomeTeam.ExternalID != 121 || feed.HomeTeam.Name != "New York Mets" {
		t.Fatalf("unexpected home team meta: %+v", feed.HomeTeam)
	}
	if len(feed.AwayPlayers) != 2 || len(feed.HomePlayers) != 1 {
		t.Fatalf("unexpected player counts: away=%d home=%d", len(feed.AwayPlayers), len(feed.HomePlayers))
	}

	cruz := feed.AwayPlayers["ID607231"]
	if cruz.PersonID != 607231 || cruz.FullName != "Oneil Cruz" || cruz.Position.Abbreviation != "SS" {
		t.Fatalf("unexpected mapped player: %+v", cruz)
	}
	if cruz.BattingOrder == nil || *cruz.BattingOrder != "100" {
		t.Fatalf("expected raw batting order %q, got %+v", "100", cruz.BattingOrder)
	}

	bednar := feed.AwayPlayers["ID112233"]
	if bednar.BattingOrder != nil {
		t.Fatalf("expected nil batting order for pitcher, got %q", *bednar.BattingOrder)
	}
}

func TestClient_FetchLiveFeed_RejectsBadGamePk(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Logger: logging.NewNop()})

	_, err := client.FetchLiveFeed(t.Context(), 0)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClient_FetchLiveFeed_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	_, err := client.FetchLiveFeed(t.Context(), 999999)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchLiveFeed_ProviderError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream blew up", http.StatusInternalServerError)
	})

	_, err := client.FetchLiveFeed(t.Context(), 716463)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestClient_FetchLiveFeed_MalformedPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"gameData": {`))
	})

	_, err := client.FetchLiveFeed(t.Context(), 716463)
	if !errors.Is(err, usecase.ErrMalformedFeed) {
		t.Fatalf("expected ErrMalformedFeed, got %v", err)
	}
}

func TestClient_FetchLiveFeed_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Logger:  logging.NewNop(),
	})

	_, err := client.FetchLiveFeed(t.Context(), 716463)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	short := abbreviateBody([]byte("  short body \n"))
	if short != "short body" {
		t.Fatalf("unexpected trimmed body: %q", short)
	}

	long := make([]byte, 1024)
	for i := range long {
		long[i] = 'x'
	}
	abbreviated := abbreviateBody(long)
	if len(abbreviated) != 256+len("...") {
		t.Fatalf("unexpected abbreviated length: %d", len(abbreviated))
	}
}
