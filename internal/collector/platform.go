package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"HoopsSentinel/internal/model"
)

// PlatformClient implements PlatformProvider against the fantasy platform's
// REST API. Transient failures are retried with exponential backoff; 4xx
// responses abort immediately.
type PlatformClient struct {
	BaseURL  string
	Token    string
	LeagueID string
	TeamID   string
	Client   *http.Client
}

// NewPlatformClient creates a new client with optional proxy support.
func NewPlatformClient(baseURL, token, leagueID, teamID, proxyURL string) *PlatformClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &PlatformClient{
		BaseURL:  baseURL,
		Token:    token,
		LeagueID: leagueID,
		TeamID:   teamID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *PlatformClient) Name() string { return "platform" }

// wirePlayer is the expected JSON shape from the platform API.
type wirePlayer struct {
	Name         string   `json:"name"`
	Team         string   `json:"team"`
	Positions    []string `json:"eligible_positions"`
	Status       string   `json:"status"`
	SelectedSlot string   `json:"selected_position"`
	Rank14       int      `json:"rank_last14"`
	Rank30       int      `json:"rank_last30"`
	MPG          float64  `json:"minutes_per_game"`
	GamesLast30  int      `json:"games_last30"`
	PercentOwned float64  `json:"percent_owned"`
}

func (p *PlatformClient) FetchRoster(ctx context.Context) ([]model.Player, error) {
	endpoint := fmt.Sprintf("%s/api/v1/leagues/%s/teams/%s/roster", p.BaseURL, p.LeagueID, p.TeamID)
	return p.fetchPlayers(ctx, endpoint)
}

func (p *PlatformClient) FetchFreeAgents(ctx context.Context, limit int) ([]model.Player, error) {
	endpoint := fmt.Sprintf("%s/api/v1/leagues/%s/players?status=FA&sort=rank_last30&limit=%d",
		p.BaseURL, p.LeagueID, limit)
	return p.fetchPlayers(ctx, endpoint)
}

func (p *PlatformClient) fetchPlayers(ctx context.Context, endpoint string) ([]model.Player, error) {
	var wire []wirePlayer
	if err := p.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}
	players := make([]model.Player, len(wire))
	for i, w := range wire {
		players[i] = model.Player{
			Name:         w.Name,
			Team:         w.Team,
			Positions:    w.Positions,
			Status:       model.ParseStatus(w.Status),
			CurrentSlot:  w.SelectedSlot,
			MPG:          w.MPG,
			GamesLast30:  w.GamesLast30,
			PercentOwned: w.PercentOwned,
		}
		// The platform reports 0 for players without enough games in a window.
		if w.Rank14 > 0 {
			players[i].Rank14 = model.NewRank(w.Rank14)
		}
		if w.Rank30 > 0 {
			players[i].Rank30 = model.NewRank(w.Rank30)
		}
	}
	return players, nil
}

func (p *PlatformClient) getJSON(ctx context.Context, endpoint string, out any) error {
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if p.Token != "" {
			req.Header.Set("Authorization", "Bearer "+p.Token)
		}
		resp, err := p.Client.Do(req)
		if err != nil {
			return fmt.Errorf("platform request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			err := fmt.Errorf("platform request: status %d, body: %s", resp.StatusCode, string(body))
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
			return err
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode platform response: %w", err))
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(op, bo)
}
