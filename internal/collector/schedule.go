package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// abbrFixes normalizes schedule-source team codes to official NBA
// abbreviations. Covers ESPN quirks and a few legacy franchise codes.
var abbrFixes = map[string]string{
	"UTAH": "UTA",
	"WSH":  "WAS",
	"NO":   "NOP",
	"GS":   "GSW",
	"NY":   "NYK",
	"SA":   "SAS",
	"PHO":  "PHX",
	"NJN":  "BKN",
	"NOH":  "NOP",
	"SEA":  "OKC",
	"VAN":  "MEM",
}

func normalizeAbbr(raw string) string {
	up := strings.ToUpper(raw)
	if fixed, ok := abbrFixes[up]; ok {
		return fixed
	}
	return up
}

// ESPNSchedule implements ScheduleProvider using ESPN's public scoreboard
// API, which requires no auth.
type ESPNSchedule struct {
	BaseURL string
	Client  *http.Client

	// Now allows tests to pin the clock. Nil means time.Now.
	Now func() time.Time
}

// NewESPNSchedule creates a schedule provider with optional proxy support.
func NewESPNSchedule(baseURL, proxyURL string) *ESPNSchedule {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &ESPNSchedule{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (s *ESPNSchedule) Name() string { return "espn" }

func (s *ESPNSchedule) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// TeamsPlayingToday returns the set of team abbreviations with a game today.
func (s *ESPNSchedule) TeamsPlayingToday(ctx context.Context) (map[string]bool, error) {
	teams, err := s.teamsOnDate(ctx, s.now())
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] schedule: %d teams playing today", len(teams))
	return teams, nil
}

// GamesRemainingThisWeek counts games per team from today through Sunday.
// Fantasy weeks run Monday to Sunday. A day that fails to fetch is skipped
// with a warning rather than failing the whole count.
func (s *ESPNSchedule) GamesRemainingThisWeek(ctx context.Context) (map[string]int, error) {
	today := s.now()
	daysUntilSunday := (7 - int(today.Weekday())) % 7

	counts := make(map[string]int)
	for d := 0; d <= daysUntilSunday; d++ {
		day := today.AddDate(0, 0, d)
		teams, err := s.teamsOnDate(ctx, day)
		if err != nil {
			log.Printf("[WARN] schedule fetch for %s failed: %v, skipping day", day.Format("2006-01-02"), err)
			continue
		}
		for abbr := range teams {
			counts[abbr]++
		}
	}
	return counts, nil
}

// scoreboard is the slice of the ESPN response we care about.
type scoreboard struct {
	Events []struct {
		Competitions []struct {
			Competitors []struct {
				Team struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

func (s *ESPNSchedule) teamsOnDate(ctx context.Context, day time.Time) (map[string]bool, error) {
	endpoint := fmt.Sprintf("%s/scoreboard?dates=%s", s.BaseURL, day.Format("20060102"))

	var board scoreboard
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := s.Client.Do(req)
		if err != nil {
			return fmt.Errorf("scoreboard request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("scoreboard request: status %d", resp.StatusCode)
		}
		if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
			return backoff.Permanent(fmt.Errorf("decode scoreboard: %w", err))
		}
		return nil
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	teams := make(map[string]bool)
	for _, ev := range board.Events {
		for _, comp := range ev.Competitions {
			for _, c := range comp.Competitors {
				if abbr := c.Team.Abbreviation; abbr != "" {
					teams[normalizeAbbr(abbr)] = true
				}
			}
		}
	}
	return teams, nil
}
