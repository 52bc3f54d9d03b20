package gameapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mgrushin/mars-monitor/internal/entity"
)

const (
	// DefaultBaseURL points at the public Terraforming Mars server.
	DefaultBaseURL = "https://terraforming-mars.herokuapp.com"
	// DefaultTimeout bounds a single state fetch.
	DefaultTimeout = 15 * time.Second

	statePath = "/api/game"
)

// Client fetches game session state over the server's JSON API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a game API client. Empty baseURL and zero timeout
// fall back to the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		hc:      newHTTPClient(timeout),
	}
}

// FetchState loads the current snapshot of a game session. Any transport
// failure, non-200 status or undecodable body is returned as an error;
// the caller decides whether that is fatal.
func (c *Client) FetchState(ctx context.Context, gameID string) (*entity.Snapshot, error) {
	addr := fmt.Sprintf("%s%s?id=%s", c.baseURL, statePath, url.QueryEscape(gameID))
	slog.Debug("requesting game state", "url", addr)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build game state request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game state for %q: %w", gameID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("game state request for %q returned status %d", gameID, resp.StatusCode)
	}

	var snapshot entity.Snapshot
	if err = json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode game state for %q: %w", gameID, err)
	}
	slog.Debug("game state loaded", "game_id", gameID, "phase", snapshot.Phase, "players_count", len(snapshot.Players))

	return &snapshot, nil
}
