package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/lineup-card/internal/platform/logging"
	"github.com/riskibarqy/lineup-card/internal/usecase"
)

const (
	defaultBaseURL      = "https://statsapi.mlb.com/api/v1.1"
	liveFeedPathPattern = "/game/%d/feed/live"
	maxResponseBytes    = 16 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client fetches live game feeds from the MLB Stats API. The feed endpoint
// is public: no token, no query parameters. Each call is one plain GET;
// there is deliberately no retry, cache, or rate-limit layer here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// FetchLiveFeed implements usecase.LiveFeedFetcher.
func (c *Client) FetchLiveFeed(ctx context.Context, gamePk int64) (usecase.LiveGameFeed, error) {
	if gamePk <= 0 {
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: game pk must be greater than zero", usecase.ErrInvalidInput)
	}

	fullURL := c.baseURL + fmt.Sprintf(liveFeedPathPattern, gamePk)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return usecase.LiveGameFeed{}, crerr.Wrapf(err, "build live feed request game_pk=%d", gamePk)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "statsapi request failed", "url", fullURL, "error", err)
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: send live feed request: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: read live feed response: %v", usecase.ErrDependencyUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: game_pk=%d", usecase.ErrNotFound, gamePk)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.WarnContext(ctx, "statsapi returned non-success status",
			"url", fullURL,
			"status", resp.StatusCode,
		)
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrDependencyUnavailable, resp.StatusCode, abbreviateBody(raw))
	}

	var envelope liveFeedEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return usecase.LiveGameFeed{}, fmt.Errorf("%w: decode live feed payload: %v", usecase.ErrMalformedFeed, err)
	}

	return envelope.toExternal(), nil
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
