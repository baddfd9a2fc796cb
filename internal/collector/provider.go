package collector

import (
	"context"

	"HoopsSentinel/internal/model"
)

// PlatformProvider fetches roster and free-agent data from the fantasy platform.
type PlatformProvider interface {
	FetchRoster(ctx context.Context) ([]model.Player, error)
	FetchFreeAgents(ctx context.Context, limit int) ([]model.Player, error)
	Name() string
}

// Ranking is one player's entry in the composite rankings feed.
type Ranking struct {
	Score     float64
	CatValues map[string]float64
}

// RankingsProvider fetches composite scores keyed by player name.
type RankingsProvider interface {
	FetchRankings(ctx context.Context) (map[string]Ranking, error)
	Name() string
}

// ScheduleProvider answers which NBA teams play today and how many games
// each team has left this week.
type ScheduleProvider interface {
	TeamsPlayingToday(ctx context.Context) (map[string]bool, error)
	GamesRemainingThisWeek(ctx context.Context) (map[string]int, error)
	Name() string
}

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Roster     []model.Player
	FreeAgents []model.Player
	Rankings   map[string]Ranking
	Today      map[string]bool
	Remaining  map[string]int

	RosterErr   error
	RankingsErr error
	ScheduleErr error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchRoster(_ context.Context) ([]model.Player, error) {
	return m.Roster, m.RosterErr
}

func (m *MockProvider) FetchFreeAgents(_ context.Context, limit int) ([]model.Player, error) {
	if limit > 0 && limit < len(m.FreeAgents) {
		return m.FreeAgents[:limit], nil
	}
	return m.FreeAgents, nil
}

func (m *MockProvider) FetchRankings(_ context.Context) (map[string]Ranking, error) {
	return m.Rankings, m.RankingsErr
}

func (m *MockProvider) TeamsPlayingToday(_ context.Context) (map[string]bool, error) {
	return m.Today, m.ScheduleErr
}

func (m *MockProvider) GamesRemainingThisWeek(_ context.Context) (map[string]int, error) {
	return m.Remaining, m.ScheduleErr
}
